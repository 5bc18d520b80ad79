package registry

import (
	"net/url"
	"strings"

	"fundscout/pkg/serrors"
)

// ExtractDomainName normalizes a raw URL into the domain name used as the
// registry identity: lower-cased host with the www. prefix, port, scheme and
// path stripped. It fails on malformed input and on URLs without a host,
// such as file: or mailto: URLs.
func ExtractDomainName(rawURL string) (string, error) {
	if strings.TrimSpace(rawURL) == "" {
		return "", serrors.With(serrors.ErrBadRequest, "empty URL")
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", serrors.Wrap(serrors.ErrBadRequest, err, "malformed URL")
	}

	host := parsed.Hostname()
	if host == "" {
		return "", serrors.With(serrors.ErrBadRequest, "no host in URL %q", rawURL)
	}

	host = strings.ToLower(host)
	host = strings.TrimPrefix(host, "www.")
	host = strings.TrimSuffix(host, ".")

	if host == "" {
		return "", serrors.With(serrors.ErrBadRequest, "no host in URL %q", rawURL)
	}

	return host, nil
}
