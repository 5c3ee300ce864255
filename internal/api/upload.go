package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/brightofhouse/site/internal/apperror"
	"github.com/brightofhouse/site/internal/asset"
	"github.com/brightofhouse/site/internal/logger"
	"github.com/brightofhouse/site/internal/media/image"
	"github.com/brightofhouse/site/internal/media/video"
	"github.com/brightofhouse/site/internal/metrics"
	"github.com/brightofhouse/site/internal/tracing"
	"go.opentelemetry.io/otel/attribute"
)

// ImageNormalizer is satisfied by *image.Normalizer.
type ImageNormalizer interface {
	Normalize(ctx context.Context, r io.Reader) (*image.Output, error)
}

// VideoTranscoder is satisfied by *video.Transcoder.
type VideoTranscoder interface {
	Transcode(ctx context.Context, r io.Reader, profile video.Profile) (*video.Output, error)
}

// imageArtifact normalizes one uploaded photo. ok is false when the field is
// absent or empty so callers can choose between "required" and "keep".
func imageArtifact(r *http.Request, images ImageNormalizer, field string) (art *asset.Artifact, ok bool, err error) {
	file, header, present := formFile(r, field)
	if !present {
		return nil, false, nil
	}
	defer func() { _ = file.Close() }()

	if IsBlockedExtension(header.Filename) {
		return nil, true, apperror.WithMessage(apperror.ErrInvalidUpload, "This file type is not allowed")
	}

	ctx, span := tracing.StartSpan(r.Context(), "media.normalize_image")
	defer span.End()
	span.SetAttributes(attribute.String("upload.field", field), attribute.Int64("upload.size", header.Size))

	start := time.Now()
	out, err := images.Normalize(ctx, file)
	metrics.RecordTransform("image", err, time.Since(start).Seconds())
	if err != nil {
		tracing.RecordError(ctx, err)
		return nil, true, mapImageError(err)
	}

	logger.FromContext(ctx).Debug("image normalized",
		"field", field,
		"filename", SanitizeFilename(header.Filename),
		"input_size", header.Size,
		"output_size", out.Size(),
		"width", out.Width,
		"height", out.Height,
	)
	return &asset.Artifact{Data: out.Data, Ext: out.Ext, ContentType: out.ContentType}, true, nil
}

func mapImageError(err error) error {
	switch {
	case errors.Is(err, image.ErrInvalidImage):
		return apperror.Wrap(err, apperror.ErrInvalidImage)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return apperror.Wrap(err, apperror.ErrServiceUnavailable)
	default:
		return apperror.Wrap(err, apperror.ErrTransformFailed)
	}
}

// videoArtifact transcodes the uploaded file for profile. It blocks for the
// whole ffmpeg run.
func videoArtifact(r *http.Request, videos VideoTranscoder, field string, profile video.Profile) (*asset.Artifact, error) {
	file, header, present := formFile(r, field)
	if !present {
		return nil, apperror.WithMessage(apperror.ErrInvalidUpload, videoFieldsRequired)
	}
	defer func() { _ = file.Close() }()

	if IsBlockedExtension(header.Filename) || !IsAllowedVideoType(header.Header.Get("Content-Type")) {
		return nil, apperror.WithMessage(apperror.ErrInvalidUpload, "This file type is not allowed")
	}

	ctx, span := tracing.StartSpan(r.Context(), "media.transcode_video")
	defer span.End()
	span.SetAttributes(attribute.String("video.profile", string(profile)), attribute.Int64("upload.size", header.Size))

	log := logger.FromContext(ctx)
	log.Info("video transcode requested",
		"filename", SanitizeFilename(header.Filename),
		"size", header.Size,
		"profile", profile,
	)

	start := time.Now()
	out, err := videos.Transcode(ctx, file, profile)
	metrics.RecordTransform("video", err, time.Since(start).Seconds())
	if err != nil {
		tracing.RecordError(ctx, err)
		return nil, mapVideoError(err)
	}
	return &asset.Artifact{Data: out.Data, Ext: out.Ext, ContentType: out.ContentType}, nil
}

func mapVideoError(err error) error {
	switch {
	case errors.Is(err, video.ErrInvalidUpload):
		return apperror.Wrap(err, apperror.ErrInvalidUpload)
	case errors.Is(err, video.ErrUnknownProfile):
		return apperror.WrapWithMessage(err, apperror.ErrInvalidUpload.Code, videoFieldsRequired, http.StatusBadRequest)
	case errors.Is(err, video.ErrStorageIO):
		return apperror.Wrap(err, apperror.ErrInternal)
	default:
		return apperror.Wrap(err, apperror.ErrTransformFailed)
	}
}

// storeErr maps a reference store failure. Durable upload failures are
// reported as a bad gateway; record failures are internal.
func storeErr(err error) error {
	switch {
	case errors.Is(err, asset.ErrUpload):
		return apperror.Wrap(err, apperror.ErrStorageIO)
	default:
		return apperror.Wrap(err, apperror.ErrInternal)
	}
}
