package scrape

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
	"golang.org/x/time/rate"

	"fpt/internal/providers"
	"fpt/internal/structures"
)

// BlockSource retrieves the raw text of every result block on a search page.
// The parsing core consumes these strings and nothing else from the DOM.
type BlockSource interface {
	FetchBlocks(ctx context.Context, url string) ([]string, error)
}

type ChromeFetcher struct {
	conf    structures.ScrapeConfig
	logger  providers.Logger
	limiter *rate.Limiter
}

func NewChromeFetcher(conf *structures.Config, logger providers.Logger) BlockSource {
	perSecond := conf.Scrape.RatePerSecond
	if perSecond <= 0 {
		perSecond = 0.2
	}
	burst := conf.Scrape.RateBurst
	if burst < 1 {
		burst = 1
	}

	return &ChromeFetcher{
		conf:    conf.Scrape,
		logger:  logger,
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
	}
}

// FetchBlocks loads the page in a fresh headless browser, dismisses the
// cookie-consent dialog if one shows up, waits for result blocks and pulls
// each block's inner text. Page loads are rate limited so repeated scheduler
// runs do not hammer the site.
func (f *ChromeFetcher) FetchBlocks(ctx context.Context, url string) ([]string, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", f.conf.Headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
	)
	if f.conf.UserAgent != "" {
		opts = append(opts, chromedp.UserAgent(f.conf.UserAgent))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	runCtx, cancel := context.WithTimeout(browserCtx, f.conf.PageTimeout*time.Second)
	defer cancel()

	if err := chromedp.Run(runCtx, chromedp.Navigate(url)); err != nil {
		return nil, fmt.Errorf("navigate %s: %w", url, err)
	}

	f.dismissConsent(runCtx)

	var blocks []string
	tasks := chromedp.Tasks{
		chromedp.WaitVisible(f.conf.ResultSelector, chromedp.ByQuery),
	}
	if f.conf.SettleDelay > 0 {
		tasks = append(tasks, chromedp.Sleep(f.conf.SettleDelay*time.Second))
	}
	tasks = append(tasks, chromedp.Evaluate(blockTextScript(f.conf.ResultSelector), &blocks))

	if err := chromedp.Run(runCtx, tasks); err != nil {
		return nil, fmt.Errorf("extract result blocks from %s: %w", url, err)
	}

	f.logger.Infof(providers.TypeScrape, "Fetched %d result blocks from %s", len(blocks), url)
	return blocks, nil
}

// dismissConsent clicks the decline button when the consent dialog appears.
// Absence of the dialog is the common case after the first visit, so a
// failed click is only worth a debug line.
func (f *ChromeFetcher) dismissConsent(ctx context.Context) {
	if f.conf.ConsentSelector == "" {
		return
	}
	clickCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	err := chromedp.Run(clickCtx,
		chromedp.Click(f.conf.ConsentSelector, chromedp.ByQuery, chromedp.NodeVisible),
	)
	if err != nil {
		f.logger.Debugf(providers.TypeScrape, "No consent dialog dismissed: %s", err)
	}
}

func blockTextScript(selector string) string {
	return fmt.Sprintf(
		`Array.from(document.querySelectorAll(%q)).map((el) => el.innerText)`,
		selector,
	)
}
