package log

import "sort"

// KV holds the key-value pairs attached to a single log entry. Keys are
// emitted in sorted order so entries are stable across runs.
type KV map[string]any

// kvToArgs flattens the first KV into alternating key-value arguments for
// slog. Extra KV arguments are ignored; the variadic form only exists so
// call sites can omit the map entirely.
func kvToArgs(keyVals ...KV) []any {
	args := []any{}
	if len(keyVals) == 0 {
		return args
	}

	kv := keyVals[0]
	keys := make([]string, 0, len(kv))
	for key := range kv {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		args = append(args, key, kv[key])
	}
	return args
}

// kvToArgsNs is kvToArgs with the namespace prepended as the "ns" pair.
func kvToArgsNs(namespace string, keyVals ...KV) []any {
	return append([]any{"ns", namespace}, kvToArgs(keyVals...)...)
}
