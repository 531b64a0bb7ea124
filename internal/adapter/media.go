// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

type uploadResponse struct {
	PublicID  string `json:"public_id"`
	SecureURL string `json:"secure_url"`
	URL       string `json:"url"`
}

type destroyResponse struct {
	Result string `json:"result"`
}

// cloudinaryGateway talks to a Cloudinary compatible upload API using signed
// requests.
type cloudinaryGateway struct {
	client    *utils.HTTPClient
	cloudName string
	apiKey    string
	apiSecret string
	now       func() time.Time
	logger    *logger.Logger
}

// NewMediaGateway builds a [MediaGateway] for the media host described by cfg.
func NewMediaGateway(cfg config.Media, log *logger.Logger) MediaGateway {
	return &cloudinaryGateway{
		client:    utils.NewHTTPClient(cfg.BaseURL, cfg.RequestTimeout),
		cloudName: cfg.CloudName,
		apiKey:    cfg.APIKey,
		apiSecret: cfg.APISecret,
		now:       time.Now,
		logger:    log,
	}
}

// Upload posts the file as multipart form data to /v1_1/{cloud}/auto/upload.
func (g *cloudinaryGateway) Upload(ctx context.Context, localPath string) (models.Media, error) {
	log := logger.FromContext(ctx)

	params := g.signedParams(nil)

	resp, err := g.client.R().
		SetContext(ctx).
		SetFile("file", localPath).
		SetFormData(params).
		SetResult(&uploadResponse{}).
		SetError(&apiError{}).
		Post(fmt.Sprintf("/v1_1/%s/auto/upload", g.cloudName))
	if err != nil {
		log.Err(err).Str("func", "*cloudinaryGateway.Upload").Msg("upload request failed")
		return models.Media{}, fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "*cloudinaryGateway.Upload").Int("status", resp.StatusCode()).Msg("media host rejected upload")
		return models.Media{}, fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}

	result, ok := resp.Result().(*uploadResponse)
	if !ok || result.PublicID == "" {
		return models.Media{}, fmt.Errorf("%w: unexpected response body", ErrUploadFailed)
	}

	url := result.SecureURL
	if url == "" {
		url = result.URL
	}
	if url == "" {
		return models.Media{}, fmt.Errorf("%w: response has no url", ErrUploadFailed)
	}

	log.Debug().Str("func", "*cloudinaryGateway.Upload").Str("public_id", result.PublicID).Msg("file uploaded")

	return models.Media{URL: url, PublicID: result.PublicID}, nil
}

// Destroy deletes an image by public id. A file that is already gone counts
// as destroyed.
func (g *cloudinaryGateway) Destroy(ctx context.Context, publicID string) error {
	log := logger.FromContext(ctx)

	params := g.signedParams(map[string]string{"public_id": publicID})

	resp, err := g.client.R().
		SetContext(ctx).
		SetFormData(params).
		SetResult(&destroyResponse{}).
		SetError(&apiError{}).
		Post(fmt.Sprintf("/v1_1/%s/image/destroy", g.cloudName))
	if err != nil {
		log.Err(err).Str("func", "*cloudinaryGateway.Destroy").Msg("destroy request failed")
		return fmt.Errorf("%w: %w", ErrDestroyFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "*cloudinaryGateway.Destroy").Int("status", resp.StatusCode()).Msg("media host rejected destroy")
		return fmt.Errorf("%w: %w", ErrDestroyFailed, err)
	}

	result, _ := resp.Result().(*destroyResponse)
	if result == nil || (result.Result != "ok" && result.Result != "not found") {
		return fmt.Errorf("%w: unexpected result", ErrDestroyFailed)
	}

	return nil
}

// signedParams adds timestamp, api_key and signature to params.
func (g *cloudinaryGateway) signedParams(params map[string]string) map[string]string {
	signed := make(map[string]string, len(params)+3)
	for k, v := range params {
		signed[k] = v
	}
	signed["timestamp"] = strconv.FormatInt(g.now().Unix(), 10)
	signed["signature"] = sign(signed, g.apiSecret)
	signed["api_key"] = g.apiKey

	return signed
}

// sign computes the request signature: the hex SHA-1 of the parameters sorted
// by name, joined as k=v pairs with "&", followed by the api secret.
func sign(params map[string]string, secret string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}

	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + secret))
	return hex.EncodeToString(sum[:])
}
