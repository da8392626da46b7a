package superjob

import (
	"context"
	"fmt"
	"iter"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"vacancy-stats/models"
	"vacancy-stats/scraper"
	"vacancy-stats/utils"
)

const (
	source   = "superjob"
	title    = "SuperJob Moscow"
	currency = "rub"
)

// Options are the search parameters sent with every request.
type Options struct {
	BaseURL      string
	Token        string
	Catalogue    int
	Town         int
	PerPage      int
	MaxVacancies int
}

// Client pages through the SuperJob vacancy search.
type Client struct {
	http   *resty.Client
	opts   Options
	logger *utils.Logger
}

// New creates a SuperJob client authenticated with opts.Token. throttle may be nil.
func New(opts Options, throttle *utils.Throttle, logger *utils.Logger) *Client {
	rc := scraper.NewClient(opts.BaseURL, source, throttle, logger)
	rc.SetHeader("X-Api-App-Id", opts.Token)
	return &Client{http: rc, opts: opts, logger: logger}
}

func (c *Client) Name() string     { return title }
func (c *Client) Currency() string { return currency }

type searchPage struct {
	Objects []object `json:"objects"`
	Total   int      `json:"total"`
	More    bool     `json:"more"`
}

// PaymentFrom and PaymentTo are 0 when the posting leaves a bound open.
type object struct {
	ID          int64   `json:"id"`
	Profession  string  `json:"profession"`
	Link        string  `json:"link"`
	PaymentFrom float64 `json:"payment_from"`
	PaymentTo   float64 `json:"payment_to"`
	Currency    string  `json:"currency"`
}

func (o object) vacancy(fetchedAt time.Time) models.Vacancy {
	return models.Vacancy{
		Source: source,
		ID:     strconv.FormatInt(o.ID, 10),
		Title:  utils.NormaliseText(o.Profession),
		URL:    o.Link,
		Salary: &models.Salary{
			From:     o.PaymentFrom,
			To:       o.PaymentTo,
			Currency: o.Currency,
		},
		FetchedAt: fetchedAt,
	}
}

// pageLimit is the number of pages worth requesting for total results,
// capped so that no more than MaxVacancies are read.
func (c *Client) pageLimit(total int) int {
	pages := (total + c.opts.PerPage - 1) / c.opts.PerPage
	return min(pages, c.opts.MaxVacancies/c.opts.PerPage)
}

// Vacancies yields the vacancies matching language, one page per request,
// until the API reports no more results or the depth cap is reached.
// A failed request is yielded as the final element.
func (c *Client) Vacancies(ctx context.Context, language models.Language) iter.Seq2[models.Vacancy, error] {
	return func(yield func(models.Vacancy, error) bool) {
		for page := 0; ; page++ {
			payload, err := c.fetchPage(ctx, language, page)
			if err != nil {
				yield(models.Vacancy{}, err)
				return
			}

			limit := c.pageLimit(payload.Total)
			c.logger.Info("[superjob] %s: page %d/%d, %d objects (%d total)",
				language, page+1, max(limit, 1), len(payload.Objects), payload.Total)

			now := time.Now()
			for _, o := range payload.Objects {
				if !yield(o.vacancy(now), nil) {
					return
				}
			}

			if !payload.More || page+1 >= limit {
				return
			}
		}
	}
}

func (c *Client) fetchPage(ctx context.Context, language models.Language, page int) (*searchPage, error) {
	var payload searchPage
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"catalogues": strconv.Itoa(c.opts.Catalogue),
			"town":       strconv.Itoa(c.opts.Town),
			"keyword":    string(language),
			"page":       strconv.Itoa(page),
			"count":      strconv.Itoa(c.opts.PerPage),
		}).
		SetResult(&payload).
		Get("/vacancies/")
	if err := scraper.CheckResponse(res, err); err != nil {
		return nil, fmt.Errorf("superjob: fetch %s page %d: %w", language, page, err)
	}
	return &payload, nil
}
