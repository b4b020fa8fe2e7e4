// Package scraper provides functionality to fetch game files from a remote index page
package scraper

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// gameFileRegex matches file names of the form "<id>_<home>_<away>[...].<ext>"
var gameFileRegex = regexp.MustCompile(`(?i)^[^_/]+_[^_/]+_[^/]+\.(csv|html?|pdf)$`)

var client = &http.Client{
	Timeout: 30 * time.Second,
}

// FetchURL downloads the content of a URL and returns it as a string
func FetchURL(rawURL string) (string, error) {
	slog.Info("Fetching URL", "url", rawURL)

	resp, err := client.Get(rawURL)
	if err != nil {
		return "", fmt.Errorf("error fetching URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("non-200 status code: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error reading response body: %w", err)
	}

	slog.Debug("Fetched URL", "url", rawURL, "content_type", resp.Header.Get("Content-Type"), "bytes", len(body))
	return string(body), nil
}

// DownloadFile downloads a URL and saves it at localPath
func DownloadFile(rawURL string, localPath string) error {
	resp, err := client.Get(rawURL)
	if err != nil {
		return fmt.Errorf("error fetching file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("non-200 status code: %d %s", resp.StatusCode, resp.Status)
	}

	out, err := os.Create(localPath)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("error saving file: %w", err)
	}

	slog.Info("Downloaded file", "url", rawURL, "path", localPath)
	return nil
}

// ExtractGameLinks extracts links to game files from an index page
func ExtractGameLinks(htmlContent string) []string {
	var links []string

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		slog.Error("Error parsing HTML content", "error", err)
		return links
	}

	seen := make(map[string]bool)
	doc.Find("a[href]").Each(func(i int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		href = strings.TrimSpace(href)

		if !gameFileRegex.MatchString(linkFileName(href)) || seen[href] {
			return
		}
		seen[href] = true
		links = append(links, href)
	})

	slog.Debug("Extracted game links", "links", len(links))
	return links
}

// ResolveRelativeURL resolves a link against the page it was found on
func ResolveRelativeURL(baseURL, relativeURL string) (string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base URL: %w", err)
	}
	ref, err := url.Parse(relativeURL)
	if err != nil {
		return "", fmt.Errorf("invalid link: %w", err)
	}
	return base.ResolveReference(ref).String(), nil
}

// MirrorGames downloads every game file linked from indexURL into dir, skipping files
// already present, and returns the local paths
func MirrorGames(indexURL, dir string) ([]string, error) {
	content, err := FetchURL(indexURL)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	var paths []string
	for _, link := range ExtractGameLinks(content) {
		absURL, err := ResolveRelativeURL(indexURL, link)
		if err != nil {
			slog.Warn("Skipping game link", "link", link, "error", err)
			continue
		}

		localPath := filepath.Join(dir, linkFileName(link))
		if _, err := os.Stat(localPath); err == nil {
			slog.Info("Using existing game file", "path", localPath)
			paths = append(paths, localPath)
			continue
		}

		if err := DownloadFile(absURL, localPath); err != nil {
			slog.Warn("Error downloading game file", "url", absURL, "error", err)
			continue
		}
		paths = append(paths, localPath)
	}

	return paths, nil
}

// linkFileName returns the last path element of a link, without query or fragment
func linkFileName(link string) string {
	if u, err := url.Parse(link); err == nil {
		link = u.Path
	}
	name, _ := url.PathUnescape(path.Base(link))
	return name
}
