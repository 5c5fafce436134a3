package ocr

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/scouter-app/receipt-pipeline/internal/common"
	"github.com/scouter-app/receipt-pipeline/internal/extract"
)

// Config for the Google Cloud Vision client.
type Config struct {
	BaseURL string        // default https://vision.googleapis.com/v1
	APIKey  string
	Timeout time.Duration // per-call bound; a hung call must not stall the pipeline
}

// VisionClient implements extract.TextExtractor against the Vision
// images:annotate endpoint.
type VisionClient struct {
	cfg  Config
	http *http.Client
	log  *slog.Logger
}

func NewVisionClient(cfg Config, logger *slog.Logger) *VisionClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://vision.googleapis.com/v1"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 45 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &VisionClient{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  logger,
	}
}

type annotateRequest struct {
	Requests []annotateEntry `json:"requests"`
}

type annotateEntry struct {
	Image    annotateImage     `json:"image"`
	Features []annotateFeature `json:"features"`
}

type annotateImage struct {
	Content string `json:"content"` // base64
}

type annotateFeature struct {
	Type string `json:"type"`
}

type annotateResponse struct {
	Responses []struct {
		TextAnnotations []struct {
			Description string `json:"description"`
		} `json:"textAnnotations"`
		Error *struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	} `json:"responses"`
}

func (c *VisionClient) ExtractText(ctx context.Context, image []byte) (extract.TextExtractionResult, error) {
	start := time.Now()

	body := annotateRequest{Requests: []annotateEntry{{
		Image:    annotateImage{Content: base64.StdEncoding.EncodeToString(image)},
		Features: []annotateFeature{{Type: "TEXT_DETECTION"}},
	}}}

	c.log.Info("ocr.extract.start", "image_bytes", len(image))

	raw, err := c.post(ctx, body)
	if err != nil {
		c.log.Error("ocr.extract.http_error", "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return extract.TextExtractionResult{}, err
	}

	var resp annotateResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return extract.TextExtractionResult{}, common.Rejected("ocr engine", fmt.Errorf("decode vision response: %w", err))
	}
	if len(resp.Responses) == 0 {
		return extract.TextExtractionResult{}, common.Rejected("ocr engine", errors.New("empty vision response"))
	}
	r := resp.Responses[0]
	if r.Error != nil {
		// per-image errors are the API telling us the input is bad
		return extract.TextExtractionResult{}, common.Rejected("ocr engine", fmt.Errorf("vision error %d: %s", r.Error.Code, r.Error.Message))
	}
	if len(r.TextAnnotations) == 0 {
		return extract.TextExtractionResult{}, common.Rejected("ocr engine", errors.New("no text found in image"))
	}

	text := r.TextAnnotations[0].Description
	res := extract.TextExtractionResult{
		Text:      text,
		WordCount: len(strings.Fields(text)),
		Duration:  time.Since(start),
	}
	c.log.Info("ocr.extract.ok", "words", res.WordCount, "elapsed_ms", res.Duration.Milliseconds())
	return res, nil
}

func (c *VisionClient) post(ctx context.Context, body annotateRequest) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	url := strings.TrimRight(c.cfg.BaseURL, "/") + "/images:annotate?key=" + c.cfg.APIKey
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		// network errors and client timeouts are transient
		return nil, common.Unavailable("ocr engine", err)
	}
	defer func(Body io.ReadCloser) {
		if cerr := Body.Close(); cerr != nil {
			c.log.Warn("vision response body close error", "error", cerr)
		}
	}(resp.Body)

	buf := new(bytes.Buffer)
	_, _ = buf.ReadFrom(resp.Body)

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return buf.Bytes(), nil
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return nil, common.Unavailable("ocr engine", fmt.Errorf("vision status %d: %s", resp.StatusCode, buf.String()))
	default:
		return nil, common.Rejected("ocr engine", fmt.Errorf("vision status %d: %s", resp.StatusCode, buf.String()))
	}
}
