// Package fallback produces a stable, repeatable analysis result when no
// real page content can be obtained, so the same domain always yields the
// same demo score regardless of scraper availability.
package fallback

// scoreHash implements the rolling multiply-shift hash used to derive
// deterministic scores: h = (h << 5) - h + c, wrapped to 32-bit signed.
//
// The wraparound behavior is part of the persisted-score contract: results
// computed by earlier deployments used exactly this arithmetic, so the
// int32 overflow must be preserved bit-for-bit. Do not "fix" this to a
// standard hash.
func scoreHash(s string) int32 {
	var h int32
	for i := 0; i < len(s); i++ {
		h = (h << 5) - h + int32(s[i])
	}
	return h
}

// Score maps a domain and metric seed into the inclusive range [min, max].
// The domain must already be normalized; the same (domain, seed) pair
// always yields the same score.
func Score(domain, seed string, min, max int) int {
	h := int64(scoreHash(domain + seed))
	if h < 0 {
		h = -h
	}
	return min + int(h%int64(max-min+1))
}
