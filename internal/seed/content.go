// Package seed loads initial site content from a YAML file into the
// database.
package seed

import (
	"fmt"
	"os"

	"github.com/brightofhouse/site/internal/db"
	"gopkg.in/yaml.v3"
)

// Content is the seed file. Every section is optional; list order becomes
// the stored display order.
type Content struct {
	Hero     *Hero      `yaml:"hero,omitempty"`
	Company  *Company   `yaml:"company,omitempty"`
	Areas    []Area     `yaml:"areas,omitempty"`
	Menus    []Menu     `yaml:"menus,omitempty"`
	Services []Category `yaml:"services,omitempty"`
}

type Hero struct {
	Title        string `yaml:"title"`
	Subtitle     string `yaml:"subtitle"`
	MobileHeight string `yaml:"mobileHeight"`
	PcHeight     string `yaml:"pcHeight"`
	Btn1Text     string `yaml:"btn1Text"`
	Btn1Link     string `yaml:"btn1Link"`
	Btn2Text     string `yaml:"btn2Text"`
	Btn2Link     string `yaml:"btn2Link"`
}

type Company struct {
	Name            string `yaml:"name"`
	Representative  string `yaml:"representative"`
	Address         string `yaml:"address"`
	Tel             string `yaml:"tel"`
	BusinessContent string `yaml:"businessContent"`
	BusinessHours   string `yaml:"businessHours"`
	MapCode         string `yaml:"mapCode"`
}

type Area struct {
	Title   string `yaml:"title"`
	Regions string `yaml:"regions"`
	Note    string `yaml:"note"`
}

type Menu struct {
	Title       string `yaml:"title"`
	Price       string `yaml:"price"`
	PriceNote   string `yaml:"priceNote"`
	Unit        string `yaml:"unit"`
	Description string `yaml:"description"`
	Features    string `yaml:"features"`
	IsPopular   bool   `yaml:"isPopular"`
	Link        string `yaml:"link"`
}

type Category struct {
	Title string `yaml:"title"`
	Items []Item `yaml:"items"`
}

type Item struct {
	Title         string   `yaml:"title"`
	SubTitle      string   `yaml:"subTitle"`
	RegularPrice  string   `yaml:"regularPrice"`
	DiscountPrice string   `yaml:"discountPrice"`
	Details       []Detail `yaml:"details"`
}

type Detail struct {
	Label          string `yaml:"label"`
	Value          string `yaml:"value"`
	IsPrice        bool   `yaml:"isPrice"`
	IsNote         bool   `yaml:"isNote"`
	db.DetailStyle `yaml:",inline"`
}

func LoadFile(path string) (*Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*Content, error) {
	c := &Content{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("invalid seed file: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Content) validate() error {
	for i, a := range c.Areas {
		if a.Title == "" {
			return fmt.Errorf("areas[%d]: title is required", i)
		}
	}
	for i, m := range c.Menus {
		if m.Title == "" {
			return fmt.Errorf("menus[%d]: title is required", i)
		}
	}
	for i, cat := range c.Services {
		if cat.Title == "" {
			return fmt.Errorf("services[%d]: title is required", i)
		}
		for j, item := range cat.Items {
			if item.Title == "" {
				return fmt.Errorf("services[%d].items[%d]: title is required", i, j)
			}
		}
	}
	return nil
}
