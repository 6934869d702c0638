package steg

var animals = [...]string{
	"ant", "anteater", "antelope", "armadillo", "auk", "badger", "bat", "bear", "beaver", "bison",
	"boar", "buffalo", "butterfly", "camel", "capybara", "caribou", "cat", "caterpillar", "cheetah", "chimpanzee",
	"chinchilla", "chipmunk", "civet", "clam", "cobra", "cockroach", "cougar", "cow", "coyote", "crab",
	"crane", "crocodile", "crow", "deer", "dingo", "dog", "dolphin", "donkey", "duck", "eagle",
	"earthworm", "echidna", "eel", "elephant", "elk", "emu", "falcon", "ferret", "finch", "fish",
	"flamingo", "fly", "fox", "frog", "gazelle", "gecko", "gerbil", "giraffe", "goat", "goose",
	"gorilla", "grasshopper", "hamster", "hare", "hawk", "hedgehog", "heron", "hippopotamus", "hornet", "horse",
	"hummingbird", "hyena", "ibis", "iguana", "impala", "jaguar", "jay", "kangaroo", "kingfisher", "kiwi",
	"koala", "kudu", "ladybug", "lemur", "leopard", "lion", "lizard", "lobster", "lynx", "macaw",
	"magpie", "marmot", "marten", "meerkat", "mink", "mole", "mongoose", "monkey", "moose", "mosquito",
	"mouse", "mule", "narwhal", "newt", "nightingale", "ocelot", "octopus", "okapi", "opossum", "orangutan",
	"ostrich", "otter", "owl", "oyster", "panda", "panther", "parrot", "peacock", "pelican", "penguin",
	"pheasant", "pig", "pigeon", "porcupine", "porpoise", "quail", "rabbit", "racoon", "ram", "rat",
	"raven", "reindeer", "rhinoceros", "robin", "salamander", "salmon", "sandpiper", "scorpion", "seahorse", "shark",
	"sheep", "shrimp", "skunk", "sloth", "snail", "snake", "sparrow", "spider", "squid", "squirrel",
	"starfish", "stoat", "stork", "swan", "tapir", "termite", "tiger", "toad", "trout", "turkey",
	"turtle", "vulture", "wallaby", "walrus", "wasp", "weasel", "whale", "wolf", "wolverine", "worm",
	"yak", "zebra",
}

// Animals returns a copy of the default phrase vocabulary.
func Animals() []string {
	words := make([]string, len(animals))
	copy(words, animals[:])
	return words
}
