// Package browser drives a headless Chrome instance to capture the event
// page as a set of scraper regions.
//
// The extraction pipeline never talks to the browser directly: this package
// navigates, waits for the page to settle, and snapshots the HTML of the
// main document and every nested frame. Each snapshot becomes an
// independently queryable scraper.Region, so a frame that fails to
// snapshot costs only that frame.
package browser

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/chromedp/cdproto/target"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"

	"github.com/maskins/ticketwatch/internal/scraper"
)

// frameSnapshotTimeout bounds each nested frame's HTML capture; the main
// navigation timeout is the caller's.
const frameSnapshotTimeout = 10 * time.Second

var chromeExecutablePath = func() string {
	if path, _ := exec.LookPath("google-chrome"); path != "" {
		return path
	}
	if path, _ := exec.LookPath("chromium"); path != "" {
		return path
	}
	return "/Applications/Google Chrome.app/Contents/MacOS/Google Chrome"
}()

// Options configures a page fetch.
type Options struct {
	// UserAgent identifies the watcher to the site.
	UserAgent string
	// Timeout bounds navigation plus settling for the whole page.
	Timeout time.Duration
	// SettleDelay waits after the body is visible for late content.
	SettleDelay time.Duration
}

// FetchRegions navigates to pageURL and returns one region for the main
// document plus one per nested frame that could be snapshotted. Only a
// failure to load the main document is an error; frame failures are
// logged and skipped.
func FetchRegions(parent context.Context, pageURL string, opts Options, log *zap.Logger) ([]scraper.Region, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 120 * time.Second
	}
	if opts.SettleDelay <= 0 {
		opts.SettleDelay = 2 * time.Second
	}

	allocatorOptions := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.ExecPath(chromeExecutablePath),
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
	)
	if opts.UserAgent != "" {
		allocatorOptions = append(allocatorOptions, chromedp.UserAgent(opts.UserAgent))
	}

	allocatorCtx, cancelAllocator := chromedp.NewExecAllocator(parent, allocatorOptions...)
	defer cancelAllocator()

	browserCtx, cancelBrowser := chromedp.NewContext(allocatorCtx)
	defer cancelBrowser()

	if err := chromedp.Run(browserCtx); err != nil {
		return nil, fmt.Errorf("starting Chrome: %w", err)
	}

	navigateCtx, cancelNavigate := context.WithTimeout(browserCtx, opts.Timeout)
	defer cancelNavigate()

	log.Info("navigating", zap.String("url", pageURL))
	var pageHTML string
	err := chromedp.Run(navigateCtx,
		chromedp.Navigate(pageURL),
		chromedp.WaitVisible("body", chromedp.ByQuery),
		chromedp.Sleep(opts.SettleDelay),
		chromedp.OuterHTML("html", &pageHTML, chromedp.ByQuery),
	)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", pageURL, err)
	}

	var regions []scraper.Region
	mainRegion, err := scraper.NewDocumentRegion(strings.NewReader(pageHTML))
	if err != nil {
		return nil, fmt.Errorf("parsing main document: %w", err)
	}
	regions = append(regions, mainRegion)

	regions = append(regions, frameRegions(browserCtx, log)...)
	log.Info("page captured", zap.Int("regions", len(regions)))
	return regions, nil
}

// frameRegions snapshots every iframe target of the current page. Frames
// that detach or time out while being read are skipped.
func frameRegions(browserCtx context.Context, log *zap.Logger) []scraper.Region {
	targets, err := chromedp.Targets(browserCtx)
	if err != nil {
		log.Warn("listing frame targets failed", zap.Error(err))
		return nil
	}

	var regions []scraper.Region
	for _, info := range targets {
		if info.Type != "iframe" {
			continue
		}
		region, err := snapshotFrame(browserCtx, info.TargetID)
		if err != nil {
			log.Debug("frame snapshot skipped", zap.String("url", info.URL), zap.Error(err))
			continue
		}
		regions = append(regions, region)
	}
	return regions
}

func snapshotFrame(browserCtx context.Context, id target.ID) (scraper.Region, error) {
	frameCtx, cancelFrame := chromedp.NewContext(browserCtx, chromedp.WithTargetID(id))
	defer cancelFrame()

	runCtx, cancelRun := context.WithTimeout(frameCtx, frameSnapshotTimeout)
	defer cancelRun()

	var frameHTML string
	if err := chromedp.Run(runCtx, chromedp.OuterHTML("html", &frameHTML, chromedp.ByQuery)); err != nil {
		return nil, err
	}
	return scraper.NewDocumentRegion(strings.NewReader(frameHTML))
}
