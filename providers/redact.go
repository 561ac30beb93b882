// Package providers holds helpers shared by the content provider clients.
package providers

import (
	"errors"
	"net/url"
	"strings"
)

const redacted = "REDACTED"

// RedactKey removes an API key carried in a request URL from a transport
// error. net/http reports failures as *url.Error with the full URL, query
// string included.
func RedactKey(err error, key string) error {
	var uerr *url.Error
	if err == nil || key == "" || !errors.As(err, &uerr) {
		return err
	}
	u := strings.ReplaceAll(uerr.URL, url.QueryEscape(key), redacted)
	u = strings.ReplaceAll(u, key, redacted)
	return &url.Error{Op: uerr.Op, URL: u, Err: uerr.Err}
}
