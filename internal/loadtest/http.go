package loadtest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/contacts/internal/domain/model"
	"github.com/okian/contacts/pkg/logger"
)

// HTTPClient wraps http.Client with timeout.
type HTTPClient struct {
	client *http.Client
}

func newHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{client: &http.Client{Timeout: timeout}}
}

// Get performs a GET request.
func (c *HTTPClient) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return c.client.Do(req)
}

// Post performs a POST request with a JSON body.
func (c *HTTPClient) Post(ctx context.Context, url string, body any) (*http.Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.client.Do(req)
}

// submitContacts posts contacts through a pool of workers and returns the
// ids the service acknowledged with 201.
func submitContacts(ctx context.Context, cfg *Config, contacts []model.Contact, stats *Stats) []string {
	log := logger.Named("loadtest")
	log.Info(ctx, "submitting contacts", logger.Int("count", len(contacts)), logger.Int("workers", cfg.Workers))

	client := newHTTPClient(cfg.Timeout)
	url := cfg.BaseURL + "/contact"

	var (
		submitted int64
		failed    int64
		mu        sync.Mutex
		created   = make([]string, 0, len(contacts))
	)

	jobs := make(chan model.Contact, cfg.Workers*2)
	var wg sync.WaitGroup
	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for c := range jobs {
				atomic.AddInt64(&submitted, 1)
				if err := submitContact(ctx, client, url, c); err != nil {
					atomic.AddInt64(&failed, 1)
					if cfg.Verbose {
						log.Warn(ctx, "contact submission failed", logger.String("id", c.ID), logger.Error(err))
					}
					continue
				}
				mu.Lock()
				created = append(created, c.ID)
				mu.Unlock()
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, c := range contacts {
			select {
			case <-ctx.Done():
				return
			case jobs <- c:
			}
		}
	}()

	wg.Wait()

	stats.ContactsSubmitted = int(atomic.LoadInt64(&submitted))
	stats.ContactsFailed = int(atomic.LoadInt64(&failed))
	stats.ContactsCreated = len(created)

	log.Info(ctx, "contact submission completed",
		logger.Int("created", stats.ContactsCreated),
		logger.Int("failed", stats.ContactsFailed),
	)
	return created
}

func submitContact(ctx context.Context, client *HTTPClient, url string, c model.Contact) error {
	resp, err := client.Post(ctx, url, c)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}

// listContacts fetches GET /contact.
func listContacts(ctx context.Context, cfg *Config) ([]model.Contact, error) {
	client := newHTTPClient(cfg.Timeout)
	resp, err := client.Get(ctx, cfg.BaseURL+"/contact")
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("list contacts returned status %d", resp.StatusCode)
	}

	var contacts []model.Contact
	if err := json.NewDecoder(resp.Body).Decode(&contacts); err != nil {
		return nil, fmt.Errorf("failed to decode contacts: %w", err)
	}
	return contacts, nil
}
