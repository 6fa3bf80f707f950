package darijaset

import "strings"

// Topic is a two-level taxonomy path of the form "domain.subdomain",
// e.g. "basic_needs.food_drink". The taxonomy is closed: only the paths
// listed below are valid, both in source data and in the emitted dataset.
type Topic string

func (t Topic) Valid() bool {
	_, ok := topicSet[t]
	return ok
}

func (t Topic) Domain() string {
	domain, _, _ := strings.Cut(string(t), ".")
	return domain
}

func (t Topic) Subdomain() string {
	_, subdomain, _ := strings.Cut(string(t), ".")
	return subdomain
}

const (
	TopicGreetings          Topic = "basic_needs.greetings"
	TopicSocialInteractions Topic = "basic_needs.social_interactions"
	TopicFoodDrink          Topic = "basic_needs.food_drink"
	TopicShoppingMoney      Topic = "basic_needs.shopping_money"
	TopicNumbers            Topic = "basic_needs.numbers"
	TopicTimeDate           Topic = "basic_needs.time_date"
	TopicColours            Topic = "basic_needs.colours"
	TopicWeather            Topic = "basic_needs.weather"
	TopicNature             Topic = "basic_needs.nature"

	TopicFamilyRelationships Topic = "people.family_relationships"
	TopicBodyHealth          Topic = "people.body_health"
	TopicClothesFashion      Topic = "people.clothes_fashion"
	TopicPersonalQualities   Topic = "people.personal_qualities"
	TopicPhysicalAppearance  Topic = "people.physical_appearance"
	TopicFeelingsEmotions    Topic = "people.feelings_emotions"

	TopicHomeBuildings      Topic = "daily_life.home_buildings"
	TopicTravelTransport    Topic = "daily_life.travel_transport"
	TopicWorkSchool         Topic = "daily_life.work_school"
	TopicLeisureSport       Topic = "daily_life.leisure_sport"
	TopicAnimals            Topic = "daily_life.animals"
	TopicMediaEntertainment Topic = "daily_life.media_entertainment"

	TopicPoliticsSociety   Topic = "extra_advanced.politics_society"
	TopicScienceTechnology Topic = "extra_advanced.science_technology"
	TopicEnvironment       Topic = "extra_advanced.environment"
	TopicBusinessEconomy   Topic = "extra_advanced.business_economy"
	TopicCultureArt        Topic = "extra_advanced.culture_art"
	TopicReligion          Topic = "extra_advanced.religion"
)

var allTopics = []Topic{
	TopicGreetings,
	TopicSocialInteractions,
	TopicFoodDrink,
	TopicShoppingMoney,
	TopicNumbers,
	TopicTimeDate,
	TopicColours,
	TopicWeather,
	TopicNature,
	TopicFamilyRelationships,
	TopicBodyHealth,
	TopicClothesFashion,
	TopicPersonalQualities,
	TopicPhysicalAppearance,
	TopicFeelingsEmotions,
	TopicHomeBuildings,
	TopicTravelTransport,
	TopicWorkSchool,
	TopicLeisureSport,
	TopicAnimals,
	TopicMediaEntertainment,
	TopicPoliticsSociety,
	TopicScienceTechnology,
	TopicEnvironment,
	TopicBusinessEconomy,
	TopicCultureArt,
	TopicReligion,
}

var topicSet = func() map[Topic]struct{} {
	m := make(map[Topic]struct{}, len(allTopics))
	for _, t := range allTopics {
		m[t] = struct{}{}
	}
	return m
}()

// Topics returns the full taxonomy in its canonical order.
func Topics() []Topic {
	return append(allTopics[:0:0], allTopics...)
}
