package testutil

// DefaultSettings returns a fresh nested settings map resembling a bot
// configuration, used as the "required" side of reconciliation tests.
func DefaultSettings() map[string]interface{} {
	return map[string]interface{}{
		"name":    "assistant",
		"enabled": true,
		"sampling": map[string]interface{}{
			"temperature": 0.7,
			"top_k":       40,
			"range":       []interface{}{1, 10},
		},
		"imgmodel": map[string]interface{}{
			"payload": map[string]interface{}{
				"width":  512,
				"height": 512,
				"steps":  20,
			},
			"tags": []interface{}{},
		},
		"tags": []interface{}{"default"},
	}
}

// PartialSettings returns a fresh map that is missing several keys of
// DefaultSettings and overrides a few others.
func PartialSettings() map[string]interface{} {
	return map[string]interface{}{
		"name": "custom",
		"sampling": map[string]interface{}{
			"temperature": 1.1,
		},
		"imgmodel": map[string]interface{}{
			"payload": map[string]interface{}{
				"width": 768,
			},
		},
	}
}
