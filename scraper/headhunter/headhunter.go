package headhunter

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
	source   = "hh"
	title    = "HeadHunter Moscow"
	currency = "RUR"
)

// Options are the search parameters sent with every request.
type Options struct {
	BaseURL          string
	UserAgent        string
	ProfessionalRole int
	Area             int
	PeriodDays       int
	PerPage          int
}

// Client pages through the HeadHunter vacancy search.
type Client struct {
	http   *resty.Client
	opts   Options
	logger *utils.Logger
}

// New creates a HeadHunter client. throttle may be nil.
func New(opts Options, throttle *utils.Throttle, logger *utils.Logger) *Client {
	rc := scraper.NewClient(opts.BaseURL, source, throttle, logger)
	rc.SetHeader("User-Agent", opts.UserAgent)
	return &Client{http: rc, opts: opts, logger: logger}
}

func (c *Client) Name() string     { return title }
func (c *Client) Currency() string { return currency }

type searchPage struct {
	Items []item `json:"items"`
	Found int    `json:"found"`
	Page  int    `json:"page"`
	Pages int    `json:"pages"`
}

type item struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	AlternateURL string  `json:"alternate_url"`
	Salary       *salary `json:"salary"`
}

// From and To are null when the posting leaves a bound open.
type salary struct {
	From     *float64 `json:"from"`
	To       *float64 `json:"to"`
	Currency string   `json:"currency"`
}

func (it item) vacancy(fetchedAt time.Time) models.Vacancy {
	v := models.Vacancy{
		Source:    source,
		ID:        it.ID,
		Title:     utils.NormaliseText(it.Name),
		URL:       it.AlternateURL,
		FetchedAt: fetchedAt,
	}
	if it.Salary != nil {
		v.Salary = &models.Salary{
			From:     deref(it.Salary.From),
			To:       deref(it.Salary.To),
			Currency: it.Salary.Currency,
		}
	}
	return v
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

// Vacancies yields the vacancies whose name matches language, one page per
// request, until the page reported as last. A failed request is yielded as
// the final element.
func (c *Client) Vacancies(ctx context.Context, language models.Language) iter.Seq2[models.Vacancy, error] {
	return func(yield func(models.Vacancy, error) bool) {
		for page := 0; ; page++ {
			payload, err := c.fetchPage(ctx, language, page)
			if err != nil {
				yield(models.Vacancy{}, err)
				return
			}

			c.logger.Info("[hh] %s: page %d/%d, %d items (%d found)",
				language, page+1, max(payload.Pages, 1), len(payload.Items), payload.Found)

			now := time.Now()
			for _, it := range payload.Items {
				if !yield(it.vacancy(now), nil) {
					return
				}
			}

			if page+1 >= payload.Pages {
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
			"professional_role": strconv.Itoa(c.opts.ProfessionalRole),
			"area":              strconv.Itoa(c.opts.Area),
			"period":            strconv.Itoa(c.opts.PeriodDays),
			"text":              string(language),
			"search_field":      "name",
			"page":              strconv.Itoa(page),
			"per_page":          strconv.Itoa(c.opts.PerPage),
		}).
		SetResult(&payload).
		Get("/vacancies")
	if err := scraper.CheckResponse(res, err); err != nil {
		return nil, fmt.Errorf("hh: fetch %s page %d: %w", language, page, err)
	}
	return &payload, nil
}
