package lexicon

// English returns the built-in English stopword lexicon.
func English() *Lexicon {
	return New(englishWords...)
}

// Hindi returns the built-in Romanized Hindi lexicon.
func Hindi() *Lexicon {
	return New(hindiWords...)
}

var englishWords = []string{
	// articles, conjunctions, prepositions
	"a", "an", "the", "and", "or", "but", "nor", "so", "if", "then", "else",
	"at", "to", "in", "on", "of", "for", "with", "as", "by", "from", "about",
	"into", "over", "after", "before", "because", "since", "though",
	"although", "unless", "until", "while", "whether", "than",

	// auxiliaries and modals
	"is", "am", "are", "was", "were", "be", "been", "being", "have", "has",
	"had", "do", "does", "did", "will", "would", "could", "should", "may",
	"might", "must", "can", "shall", "not",

	// pronouns and determiners
	"i", "you", "he", "she", "it", "we", "they", "me", "him", "her", "us",
	"them", "my", "your", "his", "its", "our", "their", "this", "that",
	"these", "those", "what", "where", "when", "why", "how", "who", "whom",
	"whose", "which", "whoever", "whatever", "whenever", "wherever",
	"however", "whichever", "some", "all", "very", "just", "really", "too",

	// journaling vocabulary
	"today", "tomorrow", "yesterday", "now", "here", "there", "hello", "hi",
	"hey", "go", "going", "went", "come", "coming", "feel", "feeling",
	"felt", "day", "good", "bad", "happy", "sad", "tired", "work", "ok",
	"okay", "sorry", "please", "thanks", "thank", "yes", "no",
}

var hindiWords = []string{
	// copulas and particles
	"hai", "hain", "tha", "thi", "ho", "hoon", "hun", "haan", "han",
	"nahi", "nahin", "na", "bhi", "to", "hi", "toh", "tak", "aur", "ya",
	"lekin", "par", "magar", "kyunki", "isliye", "warna",

	// postpositions
	"mein", "me", "ko", "se", "pe", "ke", "ka", "ki", "liye",

	// pronouns
	"main", "mujhe", "mujhse", "mera", "meri", "mere", "tera", "teri",
	"tere", "apna", "apni", "apne", "hum", "tum", "aap", "woh", "voh", "ye",
	"yeh", "sab", "sabhi", "kuch",

	// question words
	"kya", "kaise", "kyun", "kahan", "kab", "kaun", "kisko", "kiska",

	// everyday words
	"aaj", "kal", "abhi", "thoda", "thode", "theek", "theekhai", "yaar",
	"bhai", "dost", "accha", "achha", "acha", "bahut", "bilkul", "mausam",
	"khushi", "khush", "din", "raat", "ghar", "kaam", "baat", "der",
	"dil", "pyar", "ishq", "mohabbat", "dosti",

	// verb forms
	"lag", "lagta", "lagti", "lagte", "raha", "rahi", "rahe", "rah",
	"kar", "karna", "karne", "kiya", "kiye", "karo", "karenge", "karte",
	"ja", "jana", "jane", "jao", "jayenge", "gaya", "gayi", "gaye",
	"de", "dena", "dene", "diya", "diye", "do", "denge",
	"le", "lena", "lene", "liya", "lo", "lenge",
	"khana", "khane", "khaya", "khaye", "khao", "khayenge",
	"sona", "sone", "soya", "soye", "soo", "soyenge",
	"chalo", "chal", "chalte", "aa", "aate", "aayenge", "aaya", "aaye",
	"dekh", "dekhte", "dekhna", "dekho", "dekhenge", "dekha", "dekhe",
	"bol", "bolte", "bolna", "bolo", "bolenge", "bola", "bole",
	"sun", "sunte", "sunna", "suno", "sunenge", "suna", "sune",
	"samajh", "samajhte", "samajhna", "samjho", "samjhenge", "samjha", "samjhe",
	"sakta", "sakti", "sakte",
}
