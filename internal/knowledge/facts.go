package knowledge

// Character and place facts used for templated topical answers.
// Written for readers aged 8-9, matching the storybook's register.

var characterFacts = map[string]string{
	"hipolito": "Hipólito es un perro-dragón súper especial. Tiene alas blancas muy bonitas y es el personaje principal de nuestro cuento.",
	"sara":     "Sara es una niña muy inteligente y cariñosa. Es la hermana de Benjamín y cuida mucho a Hipólito.",
	"benjamin": "Benjamín es el hermano de Sara. Le gusta hacer preguntas y es muy valiente.",
	"iscarot":  "Los Iscarotes son los malos del cuento. No son buenos con los perros-dragón.",
}

var placeFacts = map[string]string{
	"cordoba":    "Córdoba es la ciudad donde viven Sara y Benjamín. Es donde encontraron a Hipólito.",
	"islas":      "Las Siete Islas son el hogar de Hipólito. Son islas mágicas muy bonitas.",
	"isla":       "Cada isla es especial y diferente. Todas son muy bonitas.",
	"biblioteca": "En la biblioteca Sara y Benjamín encontraron un libro sobre animales fantásticos.",
}

// CharacterFact returns the fact for a normalized keyword mentioning a
// character, matching by prefix so "iscarotes" finds "iscarot".
func CharacterFact(word string) (string, bool) {
	if fact, ok := characterFacts[word]; ok {
		return fact, true
	}
	for key, fact := range characterFacts {
		if len(word) > len(key) && word[:len(key)] == key {
			return fact, true
		}
	}
	return "", false
}

// PlaceFact returns the fact for a normalized keyword naming a place.
func PlaceFact(word string) (string, bool) {
	fact, ok := placeFacts[word]
	return fact, ok
}

// CharacterSummary lists every main character, the default reply when a
// question is about characters but names none in particular.
func CharacterSummary() string {
	return "Los personajes principales del cuento son:\n\n" +
		"🐉 **Hipólito** - El perro-dragón con alas blancas (protagonista)\n" +
		"👧 **Sara** - Una niña muy inteligente\n" +
		"👦 **Benjamín** - El hermano de Sara\n" +
		"👹 **Los Iscarotes** - Los malos del cuento\n\n" +
		"¿Quieres saber más sobre alguno?"
}

// PlaceSummary is the default reply for place questions that name no
// specific place.
func PlaceSummary() string {
	return "La historia pasa en Córdoba y en las Siete Islas mágicas. ¿Sobre qué lugar quieres saber más?"
}
