package graph

// ============================================================================
// Row Helpers
// ============================================================================

func getStringFromRow(row map[string]any, key string) string {
	val, ok := row[key]
	if !ok || val == nil {
		return ""
	}
	if str, ok := val.(string); ok {
		return str
	}
	return ""
}

func getIntFromRow(row map[string]any, key string) int {
	val, ok := row[key]
	if !ok || val == nil {
		return 0
	}
	switch v := val.(type) {
	case int64:
		// Neo4j integers arrive as int64
		return int(v)
	case int:
		return v
	case float64:
		return int(v)
	}
	return 0
}

func getStringSliceFromRow(row map[string]any, key string) []string {
	val, ok := row[key]
	if !ok || val == nil {
		return []string{}
	}
	slice, ok := val.([]any)
	if !ok {
		return []string{}
	}
	result := make([]string, 0, len(slice))
	for _, v := range slice {
		if str, ok := v.(string); ok {
			result = append(result, str)
		}
	}
	return result
}

func getMapFromRow(row map[string]any, key string) map[string]any {
	val, ok := row[key]
	if !ok || val == nil {
		return map[string]any{}
	}
	if m, ok := val.(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

// nonNil keeps list parameters out of Cypher's null semantics: a nil slice
// would be sent as null, and size(null) is null, which poisons the WHERE
// clause the parameter appears in.
func nonNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
