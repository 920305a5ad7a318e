package trends

// Operation identifiers in the trends catalogue.
const (
	OpInterestOverTime = "get_interest_over_time"
	OpInterestByRegion = "get_interest_by_region"
	OpRelatedTopics    = "get_related_topics"
	OpRelatedQueries   = "get_related_queries"
	OpSuggestions      = "get_suggestions"
)

// DefaultResolution is the regional breakdown applied when the caller omits
// one for get_interest_by_region.
const DefaultResolution = "COUNTRY"

// opSpec describes how one operation maps onto the backend: bulk operations
// run one combined request over the full keyword list, fan-out operations
// fetch one attribute per keyword session.
type opSpec struct {
	attr string
	bulk bool
}

var registry = map[string]opSpec{
	OpInterestOverTime: {attr: "over_time", bulk: true},
	OpInterestByRegion: {attr: "by_region", bulk: true},
	OpRelatedTopics:    {attr: "related_topics"},
	OpRelatedQueries:   {attr: "related_queries"},
	OpSuggestions:      {attr: "suggestions"},
}

var catalogue = []string{
	OpInterestOverTime,
	OpInterestByRegion,
	OpRelatedTopics,
	OpRelatedQueries,
	OpSuggestions,
}
