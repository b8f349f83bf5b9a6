package azure

// Outcome is the normalized result of one az invocation. Exactly one of the
// two shapes is populated: OK with a Payload, or not-OK with ExitCode and
// Stderr. Executors never return Go errors for a failed invocation; callers
// branch on OK.
type Outcome struct {
	OK       bool
	Payload  any
	ExitCode int
	Stderr   string
}

func success(payload any) Outcome {
	return Outcome{OK: true, Payload: payload}
}

func failure(exitCode int, stderr string) Outcome {
	return Outcome{OK: false, ExitCode: exitCode, Stderr: stderr}
}

// Map returns the payload as a mapping, or nil when it is anything else.
func (o Outcome) Map() map[string]any {
	m, _ := o.Payload.(map[string]any)
	return m
}

// Seq returns the payload as a sequence of mappings. Elements that are not
// mappings are dropped.
func (o Outcome) Seq() []map[string]any {
	return asMaps(o.Payload)
}

func asMaps(payload any) []map[string]any {
	seq, ok := payload.([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(seq))
	for _, item := range seq {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

// getString mirrors the defensive field narrowing the tool applies to all
// az payloads: missing or non-string values fall back to the given literal.
func getString(m map[string]any, key, fallback string) string {
	if m == nil {
		return fallback
	}
	if s, ok := m[key].(string); ok && s != "" {
		return s
	}
	return fallback
}

func getMap(m map[string]any, key string) map[string]any {
	if m == nil {
		return nil
	}
	sub, _ := m[key].(map[string]any)
	return sub
}

func getBool(m map[string]any, key string, fallback bool) bool {
	if m == nil {
		return fallback
	}
	if b, ok := m[key].(bool); ok {
		return b
	}
	return fallback
}
