package thumbnail

import (
	"chatview/errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// URL builds the thumbnail download URL of an mxc:// content URI on homeserver.
func URL(homeserver, mxc string, p Params) (string, error) {
	server, mediaID, err := parseMXC(mxc)
	if err != nil {
		return "", err
	}
	base, err := url.Parse(strings.TrimSuffix(homeserver, "/"))
	if err != nil {
		return "", fmt.Errorf("parse homeserver %q: %w", homeserver, err)
	}
	base = base.JoinPath("_matrix", "media", "r0", "thumbnail", server, mediaID)

	query := url.Values{}
	query.Set("width", strconv.Itoa(p.Width))
	query.Set("height", strconv.Itoa(p.Height))
	query.Set("method", p.FillMode.Method())
	base.RawQuery = query.Encode()
	return base.String(), nil
}

func parseMXC(mxc string) (server, mediaID string, err error) {
	rest, ok := strings.CutPrefix(mxc, "mxc://")
	if !ok {
		return "", "", fmt.Errorf("%w: %q", errors.ErrInvalidMXC, mxc)
	}
	server, mediaID, ok = strings.Cut(rest, "/")
	if !ok || server == "" || mediaID == "" || strings.Contains(mediaID, "/") {
		return "", "", fmt.Errorf("%w: %q", errors.ErrInvalidMXC, mxc)
	}
	return server, mediaID, nil
}
