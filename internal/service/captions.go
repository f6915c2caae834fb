package service

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"html"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/phrazzld/polyglot-api/internal/catalog"
	"github.com/phrazzld/polyglot-api/internal/domain"
	"github.com/phrazzld/polyglot-api/internal/platform/logger"
)

const maxCaptionBytes = 4 << 20

var videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// Caption is one timed line of a transcript.
type Caption struct {
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
	Text     string  `json:"text"`
}

// Captions is the transcript of a video in one language.
type Captions struct {
	VideoID  string    `json:"video_id"`
	Language string    `json:"language"`
	Captions []Caption `json:"captions"`
}

// CaptionService fetches video captions for listening practice.
type CaptionService interface {
	// Captions returns the timed transcript. Returns ErrCaptionsNotFound
	// when the video has none in the language, and an error wrapping
	// domain.ErrValidation for a malformed video id.
	Captions(ctx context.Context, videoID, language string) (*Captions, error)
}

// CaptionConfig points the service at a timed-text endpoint.
type CaptionConfig struct {
	BaseURL string
	Timeout time.Duration
}

type captionService struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// NewCaptionService creates a CaptionService. A nil client gets one with
// cfg.Timeout.
func NewCaptionService(cfg CaptionConfig, client *http.Client, log *slog.Logger) (CaptionService, error) {
	if _, err := url.ParseRequestURI(cfg.BaseURL); err != nil {
		return nil, &ServiceError{Service: "caption", Operation: "create_service", Message: "invalid captions URL", Err: err}
	}
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	if log == nil {
		log = slog.Default()
	}
	return &captionService{
		baseURL: cfg.BaseURL,
		client:  client,
		logger:  log.With("component", "caption_service"),
	}, nil
}

func (s *captionService) log(ctx context.Context) *slog.Logger {
	if l := logger.FromContext(ctx); l != nil {
		return l.With("component", "caption_service")
	}
	return s.logger
}

type timedText struct {
	XMLName xml.Name `xml:"transcript"`
	Texts   []struct {
		Start string `xml:"start,attr"`
		Dur   string `xml:"dur,attr"`
		Body  string `xml:",chardata"`
	} `xml:"text"`
}

func (s *captionService) Captions(ctx context.Context, videoID, language string) (*Captions, error) {
	videoID = strings.TrimSpace(videoID)
	if !videoIDPattern.MatchString(videoID) {
		return nil, fmt.Errorf("%w: invalid video id %q", domain.ErrValidation, videoID)
	}
	code := catalog.ResolveLanguage(language)

	u, _ := url.Parse(s.baseURL)
	q := u.Query()
	q.Set("lang", code)
	q.Set("v", videoID)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, newServiceError("caption", "fetch", "failed to build request", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, newServiceError("caption", "fetch", "request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrCaptionsNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, newServiceError("caption", "fetch", "unexpected status",
			fmt.Errorf("status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxCaptionBytes))
	if err != nil {
		return nil, newServiceError("caption", "fetch", "failed to read body", err)
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil, ErrCaptionsNotFound
	}

	captions, err := parseTimedText(body)
	if err != nil {
		return nil, newServiceError("caption", "parse", "malformed timed text", err)
	}
	if len(captions) == 0 {
		return nil, ErrCaptionsNotFound
	}

	s.log(ctx).Debug("captions fetched",
		"video_id", videoID, "language", code, "lines", len(captions))
	return &Captions{VideoID: videoID, Language: code, Captions: captions}, nil
}

func parseTimedText(body []byte) ([]Caption, error) {
	var doc timedText
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, err
	}
	out := make([]Caption, 0, len(doc.Texts))
	var errs []error
	for _, t := range doc.Texts {
		text := strings.TrimSpace(html.UnescapeString(t.Body))
		if text == "" {
			continue
		}
		start, err := parseSeconds(t.Start)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		dur, err := parseSeconds(t.Dur)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out = append(out, Caption{Start: start, Duration: dur, Text: strings.Join(strings.Fields(text), " ")})
	}
	if len(out) == 0 && len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return out, nil
}

func parseSeconds(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("bad time %q: %w", s, err)
	}
	return v, nil
}
