package asset

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/brightofhouse/site/internal/logger"
	"github.com/brightofhouse/site/internal/metrics"
	"github.com/brightofhouse/site/internal/storage"
)

// DefaultSweepMinAge spares objects a Create may still be inserting a record
// for.
const DefaultSweepMinAge = time.Hour

// URLLister returns every media URL referenced by a structured record.
type URLLister interface {
	ListMediaUrls(ctx context.Context) ([]string, error)
}

type SweepOptions struct {
	DryRun bool
	MinAge time.Duration
	Now    func() time.Time
}

// SweepReport counts what a sweep found. Orphans lists unreferenced keys in
// prefix then key order, whether or not they were deleted.
type SweepReport struct {
	Referenced int      `json:"referenced"`
	Rebased    int      `json:"rebased"`
	Young      int      `json:"young"`
	Deleted    int      `json:"deleted"`
	Failed     int      `json:"failed"`
	Orphans    []string `json:"orphans"`
}

// Sweep deletes durable objects under the media prefixes that no record
// references. It reclaims what a failed Create or Replace left behind. A
// record URL outside keys' base still protects the object whose key matches
// its path, so changing the public URL never orphans live media.
func Sweep(ctx context.Context, s storage.Storage, keys *storage.Keys, q URLLister, opts SweepOptions) (*SweepReport, error) {
	log := logger.FromContext(ctx)
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}

	urls, err := q.ListMediaUrls(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list referenced media: %w", err)
	}

	prefixes := make([]string, 0, 4)
	for _, p := range Prefixes() {
		prefixes = append(prefixes, p)
	}
	sort.Strings(prefixes)

	report := &SweepReport{}
	referenced := make(map[string]bool, len(urls))
	for _, u := range urls {
		if key, ok := keys.KeyFromURL(u); ok {
			referenced[key] = true
			continue
		}
		candidates := keysInPath(u, prefixes)
		if len(candidates) == 0 {
			continue
		}
		// Recorded under another host, e.g. before the public URL changed.
		report.Rebased++
		for _, key := range candidates {
			referenced[key] = true
		}
	}
	if report.Rebased > 0 {
		log.Warn("records reference media outside the public base url", "count", report.Rebased, "base", keys.BaseURL())
	}

	cutoff := now().Add(-opts.MinAge)

	for _, prefix := range prefixes {
		objects, err := s.List(ctx, prefix+"/")
		if err != nil {
			return report, fmt.Errorf("failed to list %s: %w", prefix, err)
		}

		for _, obj := range objects {
			switch {
			case referenced[obj.Key]:
				report.Referenced++
				metrics.RecordSweep("referenced")
				continue
			case obj.LastModified.After(cutoff):
				report.Young++
				metrics.RecordSweep("young")
				continue
			}

			report.Orphans = append(report.Orphans, obj.Key)
			metrics.RecordSweep("orphaned")
			if opts.DryRun {
				continue
			}

			if err := s.Delete(ctx, obj.Key); err != nil {
				log.Warn("failed to delete orphaned object", "key", obj.Key, "error", err)
				report.Failed++
				metrics.RecordSweep("failed")
				continue
			}
			report.Deleted++
			metrics.RecordSweep("deleted")
		}
	}

	log.Info("sweep completed",
		"dry_run", opts.DryRun,
		"referenced", report.Referenced,
		"rebased", report.Rebased,
		"young", report.Young,
		"orphans", len(report.Orphans),
		"deleted", report.Deleted,
		"failed", report.Failed,
	)
	return report, nil
}

// keysInPath returns every suffix of u's path that starts at a media prefix
// segment. A base URL with its own path, such as a MinIO bucket path, yields
// more than one candidate; all of them are protected.
func keysInPath(raw string, prefixes []string) []string {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Path == "" {
		return nil
	}
	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")

	var keys []string
	for i := 0; i < len(segments)-1; i++ {
		for _, p := range prefixes {
			if segments[i] == p {
				keys = append(keys, strings.Join(segments[i:], "/"))
			}
		}
	}
	return keys
}
