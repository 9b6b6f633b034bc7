package message

import "regexp"

var (
	apiRepoPrefix = regexp.MustCompile(`^https?://api\.github\.com/repos/`)
	pullSuffix    = regexp.MustCompile(`/pulls/(\d+)$`)
	commitSuffix  = regexp.MustCompile(`/commits/([a-f0-9]+)$`)
	releaseSuffix = regexp.MustCompile(`/releases/\d+$`)
)

// BrowserURL converts a GitHub API URL to its browser-accessible form:
//
//	https://api.github.com/repos/owner/repo            -> https://github.com/owner/repo
//	.../repos/owner/repo/issues/123                    -> .../owner/repo/issues/123
//	.../repos/owner/repo/pulls/456                     -> .../owner/repo/pull/456
//	.../repos/owner/repo/commits/<sha>                 -> .../owner/repo/commit/<sha>
//	.../repos/owner/repo/releases/789                  -> .../owner/repo/releases
//
// Release detail pages are not addressable by numeric API id, so every
// release id collapses to the releases listing. Anything that does not
// start with the API host (browser URLs included) is returned unchanged,
// which also makes the rewrite idempotent. Empty in, empty out.
func BrowserURL(apiURL string) string {
	if apiURL == "" {
		return ""
	}
	if !apiRepoPrefix.MatchString(apiURL) {
		return apiURL
	}
	u := apiRepoPrefix.ReplaceAllString(apiURL, "https://github.com/")
	u = pullSuffix.ReplaceAllString(u, "/pull/$1")
	u = commitSuffix.ReplaceAllString(u, "/commit/$1")
	u = releaseSuffix.ReplaceAllString(u, "/releases")
	return u
}
