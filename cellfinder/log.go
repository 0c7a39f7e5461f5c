// SPDX-License-Identifier: MIT

package cellfinder

// Log keys for reports that are emitted at most once per Finder.
const (
	keyAllRegionsNilResults = "all-regions-near/nil-results"
	keyAllRegionsNilRoot    = "all-regions-near/nil-root"
	keyClosestNilRoot       = "closest-region/nil-root"
	keyReachableNilMap      = "reachable-cell-near/nil-map"
)

// errorOnce logs msg at error level the first time key is seen.
func (f *Finder) errorOnce(key, msg string, args ...any) {
	if f.logged.Has(key) {
		return
	}
	f.logged.Put(key)
	f.log.Error(msg, append(args, "key", key)...)
}
