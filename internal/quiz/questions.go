package quiz

// Question is one quiz item about the story.
type Question struct {
	ID          int
	Prompt      string
	Acceptable  []string
	Correct     string
	Explanation string
	Category    string
	Difficulty  string

	// RequiresMultiple marks questions whose acceptable list enumerates
	// independent facts; naming any one of them counts as correct.
	RequiresMultiple bool
}

// DefaultQuestions returns the fixed question set for the story.
func DefaultQuestions() []Question {
	return []Question{
		{
			ID:          1,
			Prompt:      "¡Hola! Soy tu profesora virtual 👩‍🏫. Empecemos con algo fácil: ¿Cómo se llama el perro-dragón de la historia?",
			Acceptable:  []string{"hipólito", "hipolito", "hipólito el perro dragón", "hipolito el perro dragon"},
			Correct:     "¡Exacto! Se llama Hipólito 🐉",
			Explanation: "El perro-dragón se llama Hipólito. Sara dijo que es un nombre perfecto para un perro-dragón de alas blancas con destellos dorados.",
			Category:    "personajes",
			Difficulty:  "fácil",
		},
		{
			ID:          2,
			Prompt:      "¿Quiénes son los dos hermanos que encontraron a Hipólito?",
			Acceptable:  []string{"sara y benjamin", "sara y benjamín", "benjamin y sara", "benjamín y sara"},
			Correct:     "¡Muy bien! Son Sara y Benjamín 👦👧",
			Explanation: "Sara y Benjamín son los hermanos protagonistas. Sara fue quien encontró a Hipólito un día de lluvia en la puerta de su casa.",
			Category:    "personajes",
			Difficulty:  "fácil",
		},
		{
			ID:               3,
			Prompt:           "¿Qué características especiales tiene Hipólito? Nombra al menos dos.",
			Acceptable:       []string{"alas", "volar", "vuela", "alas blancas", "destellos dorados", "patas grandes", "cicatriz", "dragón", "dragon", "perro dragón", "perro dragon", "blanco", "dorado", "tres puntas"},
			Correct:          "¡Perfecto! Hipólito tiene muchas características mágicas ✨",
			Explanation:      "Hipólito tiene alas blancas con destellos dorados, patas grandes para aterrizar, una cicatriz misteriosa de tres puntas y está aprendiendo a volar.",
			Category:         "descripción",
			Difficulty:       "medio",
			RequiresMultiple: true,
		},
		{
			ID:          4,
			Prompt:      "¿Dónde buscaron información sobre el origen de Hipólito Sara y Benjamín?",
			Acceptable:  []string{"biblioteca", "en la biblioteca", "libro", "libros", "grimorio", "grimorio de animales fantásticos", "en un libro", "mapa", "en el mapa"},
			Correct:     "¡Excelente! Fueron a la biblioteca 📚",
			Explanation: "Sara y Benjamín fueron a la biblioteca donde encontraron el 'Grimorio de animales fantásticos', un libro muy viejo con información sobre criaturas mágicas.",
			Category:    "trama",
			Difficulty:  "medio",
		},
		{
			ID:          5,
			Prompt:      "¿Cómo se llama el lugar de origen de Hipólito?",
			Acceptable:  []string{"siete islas", "las siete islas", "antigua república de las siete islas", "islas"},
			Correct:     "¡Muy bien! Las Siete Islas 🏝️",
			Explanation: "El lugar se llama 'La Antigua república de las siete pequeñas islas'. Es un lugar mágico y misterioso, conectado por puentes, donde probablemente nació Hipólito.",
			Category:    "lugares",
			Difficulty:  "medio",
		},
		{
			ID:          6,
			Prompt:      "¿Qué le pasó al libro que Sara y Benjamín trajeron de la biblioteca?",
			Acceptable:  []string{"hipólito se lo comió", "se lo comió", "hipólito lo comió", "se comió el libro"},
			Correct:     "¡Exacto! Hipólito se comió todo el libro 😄",
			Explanation: "Cuando Sara y Benjamín volvieron a la cocina, descubrieron que Hipólito se había comido todo el libro ¡y también su merienda! Los perros-dragones se comen todo lo que encuentran.",
			Category:    "trama",
			Difficulty:  "fácil",
		},
		{
			ID:          7,
			Prompt:      "¿Qué animales pequeños le dan besitos a Hipólito en la nariz?",
			Acceptable:  []string{"mariposas", "mariposas azules"},
			Correct:     "¡Correcto! Las mariposas azules 🦋",
			Explanation: "Hay mariposas azules por todos lados que le dan besitos a Hipólito en la nariz. Es una imagen muy tierna del cuento.",
			Category:    "detalles",
			Difficulty:  "medio",
		},
		{
			ID:          8,
			Prompt:      "Al principio de la historia, ¿qué tiempo hacía cuando apareció Hipólito?",
			Acceptable:  []string{"lluvia", "llovía", "día de lluvia", "estaba lloviendo", "lluvioso", "tiempo lluvioso", "mal tiempo"},
			Correct:     "¡Perfecto! Era un día de lluvia ☔",
			Explanation: "La historia comenzó un día de lluvia, cuando la ciudad estaba colapsada. En la puerta de la casa apareció una bolita blanca de plumas y pelos.",
			Category:    "inicio",
			Difficulty:  "fácil",
		},
		{
			ID:          9,
			Prompt:      "¿Qué decisión importante tomaron Sara y Benjamín al encontrar a Hipólito?",
			Acceptable:  []string{"adoptarlo", "lo adoptaron", "quedárselo"},
			Correct:     "¡Muy bien! Decidieron adoptarlo 💕",
			Explanation: "Sara y Benjamín decidieron adoptar a Hipólito. Sara dijo que le parecía una excelente idea cuidar de esta criatura mágica.",
			Category:    "decisiones",
			Difficulty:  "fácil",
		},
		{
			ID:          10,
			Prompt:      "¿Para qué usan Sara y Benjamín su casa cuando Hipólito está aprendiendo?",
			Acceptable:  []string{"pista de aterrizaje", "para aterrizar", "pista", "aterrizar", "practicar vuelo", "volar", "entrenar"},
			Correct:     "¡Exacto! Como pista de aterrizaje ✈️",
			Explanation: "La casa de Sara y Benjamín se convierte en una pista de aterrizaje porque Hipólito está aprendiendo a volar y necesita practicar sus aterrizajes.",
			Category:    "detalles",
			Difficulty:  "medio",
		},
	}
}
