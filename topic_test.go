package darijaset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTopicValid(t *testing.T) {
	assert.True(t, TopicGreetings.Valid())
	assert.True(t, Topic("basic_needs.food_drink").Valid())
	assert.True(t, Topic("extra_advanced.religion").Valid())

	assert.False(t, Topic("sports.football").Valid())
	assert.False(t, Topic("basic_needs").Valid())
	assert.False(t, Topic("basic_needs.football").Valid())
	assert.False(t, Topic("").Valid())
}

func TestTopicParts(t *testing.T) {
	assert.Equal(t, "basic_needs", TopicFoodDrink.Domain())
	assert.Equal(t, "food_drink", TopicFoodDrink.Subdomain())
}

func TestTopicsListing(t *testing.T) {
	topics := Topics()
	assert.Len(t, topics, 27)
	assert.Contains(t, topics, TopicGreetings)

	// every listed topic must be a two-level path and validate against itself
	for _, topic := range topics {
		assert.True(t, topic.Valid(), string(topic))
		assert.Equal(t, 2, strings.Count(string(topic), ".")+1, string(topic))
		assert.NotEmpty(t, topic.Domain())
		assert.NotEmpty(t, topic.Subdomain())
	}

	// the returned slice is a copy
	topics[0] = Topic("sports.football")
	assert.True(t, Topics()[0].Valid())
}
