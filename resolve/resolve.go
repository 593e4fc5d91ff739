// Package resolve turns a post URL into a single JSON line describing
// the media to preview and download.
package resolve

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/instantsaver/instantsaver/constant"
	"github.com/instantsaver/instantsaver/extractor"
	"github.com/instantsaver/instantsaver/filesystem"
	"github.com/instantsaver/instantsaver/history"
	"github.com/instantsaver/instantsaver/log"
	"github.com/instantsaver/instantsaver/media"
	"github.com/instantsaver/instantsaver/open"
	"github.com/instantsaver/instantsaver/platform"
	"github.com/instantsaver/instantsaver/selector"
	"github.com/instantsaver/instantsaver/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Output is the envelope written for every invocation.
// Exactly one of Result and Error is set.
type Output struct {
	*media.Result
	Error string `json:"error,omitempty"`
}

// InputError reports a URL rejected before any extraction.
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return e.Message
}

// Options configures a single Run.
type Options struct {
	// Out receives the JSON line. Defaults to stdout.
	Out io.Writer
	URL string
	// Platform skips detection when set.
	Platform mo.Option[*platform.Platform]
	// HostMatch overrides the platform's own host comparison.
	HostMatch mo.Option[platform.HostMatch]
	// Normalize rewrites the URL to its canonical form before extraction.
	Normalize bool
	// Cookies is passed to the extractor only if the file exists.
	Cookies string
	// Extractor builds the extractor chain for the resolved platform.
	Extractor func(*platform.Platform) extractor.Extractor
	Selector  selector.Options
	// Remember records successful results in the history.
	Remember bool
	// Open launches the download URL of a successful result with the given
	// application, or the system default handler when the value is empty.
	Open mo.Option[string]
}

func (o *Options) out() io.Writer {
	if o.Out == nil {
		return os.Stdout
	}
	return o.Out
}

func (o *Options) extractor(p *platform.Platform) extractor.Extractor {
	if o.Extractor == nil {
		return extractor.New(extractor.BackendYtDlp, p, "")
	}
	return o.Extractor(p)
}

func (o *Options) write(output *Output) error {
	encoder := json.NewEncoder(o.out())
	encoder.SetEscapeHTML(false)
	return encoder.Encode(output)
}

func (o *Options) reject(message string) error {
	if err := o.write(&Output{Error: message}); err != nil {
		return err
	}
	return &InputError{Message: message}
}

// Reject writes an error envelope to w and returns it as an InputError.
func Reject(w io.Writer, message string) error {
	return (&Options{Out: w}).reject(message)
}

// Run validates the URL, fetches its metadata and writes the selected media.
// Extraction and selection failures are written as an error envelope and
// do not make Run fail. Rejected input is written and returned as *InputError.
func Run(ctx context.Context, options *Options) error {
	url := strings.TrimSpace(options.URL)
	if url == "" {
		return options.reject(constant.MsgMissingURL)
	}

	p, ok := options.Platform.Get()
	if !ok {
		if p, ok = platform.Detect(url); !ok {
			log.WithField("url", url).Warn("no platform matches")
			return options.reject(constant.MsgUnsupportedURL)
		}
	}

	if err := p.Validate(url, options.HostMatch.OrElse(p.Match)); err != nil {
		log.Warn(err)
		return options.reject(p.InvalidMessage)
	}

	if options.Normalize {
		url = p.Normalize(url)
	}

	cookies := lo.Ternary(filesystem.IsFile(options.Cookies), options.Cookies, "")

	e := options.extractor(p)
	log.WithField("url", url).Infof("resolving with %s", e.Name())

	info, err := e.Fetch(ctx, url, cookies)
	if err != nil {
		log.Error(err)
		return options.write(&Output{Error: fmt.Sprintf("%s failed: %s", e.Name(), err)})
	}

	result, err := selector.Select(info, options.Selector)
	if err != nil {
		log.Warn(err)
		return options.write(&Output{Error: util.Capitalize(err.Error())})
	}

	if options.Remember {
		if err := history.Save(url, p.ID, result); err != nil {
			log.Warnf("saving history: %s", err)
		}
	}

	if err := options.write(&Output{Result: result}); err != nil {
		return err
	}

	if app, ok := options.Open.Get(); ok && result.DownloadURL != nil && *result.DownloadURL != "" {
		if err := open.Start(*result.DownloadURL, app); err != nil {
			log.Warnf("opening %s: %s", *result.DownloadURL, err)
		}
	}

	return nil
}
