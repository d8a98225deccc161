package itinerary

// Facts are shown while an itinerary is being generated.
var Facts = []string{
	"Bath was a major spa resort for the Roman Empire and remains one of the best-preserved Roman sites in Britain.",
	"Brighton's Palace Pier opened in 1899 and is over half a kilometre long.",
	"York's city walls are the longest medieval town walls still standing in England.",
	"Oxford's Bodleian Library receives a copy of every book published in the UK.",
	"Edinburgh Castle sits on the plug of an extinct volcano.",
	"Cambridge's Mathematical Bridge is often said to have been built without a single bolt.",
	"The Eurostar gets you from London to Paris in about two and a half hours.",
}

// RandSource picks an index in [0, n). *rand.Rand satisfies it.
type RandSource interface {
	IntN(n int) int
}

// RandomFact returns one of Facts.
func RandomFact(rng RandSource) string {
	return Facts[rng.IntN(len(Facts))]
}
