package recovery

// wordList is the fixed vocabulary recovery phrases are drawn from.
// 512 entries give 9 bits of entropy per word, so a 10-word phrase
// carries 90 bits, comfortably beyond offline guessing range.
var wordList = []string{
	"abandon", "above", "absurd", "account", "acoustic", "action", "adapt", "adjust",
	"advice", "afraid", "agree", "airport", "alcohol", "alley", "alpha", "always",
	"amount", "ancient", "animal", "another", "anxiety", "appear", "arch", "argue",
	"army", "arrive", "artist", "assault", "asthma", "attend", "audit", "auto",
	"avoid", "awesome", "baby", "bag", "bamboo", "barely", "basic", "bean",
	"beef", "behind", "bench", "better", "bid", "bird", "blade", "bleak",
	"blossom", "blush", "boil", "book", "borrow", "box", "brand", "breeze",
	"bright", "bronze", "brush", "buffalo", "bundle", "burst", "butter", "cabin",
	"cake", "camp", "candy", "canyon", "car", "carpet", "cash", "cat",
	"cattle", "cave", "census", "chair", "chaos", "chat", "chef", "chief",
	"choose", "churn", "citizen", "clap", "clean", "client", "clip", "cloth",
	"clump", "coast", "coil", "colt", "comfort", "concert", "connect", "contain",
	"contract", "convince", "copy", "correct", "couple", "coyote", "cram", "crawl",
	"creek", "crisp", "crouch", "cruise", "cry", "cup", "curtain", "cute",
	"damp", "darkness", "dead", "decade", "decorate", "define", "deliver", "dentist",
	"deposit", "describe", "despair", "develop", "dial", "diesel", "dignity", "direct",
	"disease", "display", "divorce", "dog", "donate", "dose", "dragon", "dream",
	"drink", "drum", "dune", "duty", "eagle", "easily", "ecology", "educate",
	"either", "elegant", "elite", "embrace", "empower", "end", "energy", "enhance",
	"enrich", "entire", "episode", "erase", "erupt", "estate", "evil", "example",
	"exclude", "exhaust", "exit", "expire", "extend", "face", "faith", "family",
	"fantasy", "fatal", "favorite", "fee", "fence", "fiber", "file", "find",
	"fire", "fish", "flag", "flavor", "float", "flower", "foam", "fold",
	"force", "fortune", "foster", "frame", "fringe", "frown", "fun", "furnace",
	"gain", "gap", "garlic", "gate", "general", "genuine", "gift", "girl",
	"glare", "globe", "glow", "gold", "gospel", "grab", "grape", "green",
	"grocery", "growl", "guess", "gun", "half", "happy", "harvest", "hazard",
	"heavy", "helmet", "hidden", "hip", "hockey", "hollow", "hope", "hospital",
	"hover", "humble", "hunt", "husband", "idea", "ill", "imitate", "impose",
	"include", "indicate", "inflict", "initial", "inner", "insane", "install", "invest",
	"island", "ivory", "jazz", "job", "joy", "jungle", "kangaroo", "key",
	"kind", "kitchen", "knee", "lab", "lady", "laptop", "laugh", "lawn",
	"leader", "lecture", "legend", "length", "letter", "library", "light", "link",
	"little", "loan", "logic", "lottery", "luck", "lunch", "mad", "mail",
	"mammal", "mango", "marble", "market", "master", "matrix", "meadow", "mechanic",
	"melt", "menu", "merry", "method", "million", "minor", "misery", "mixed",
	"modify", "monkey", "moral", "mother", "mouse", "muffin", "mushroom", "myself",
	"name", "nation", "need", "nephew", "network", "next", "noise", "north",
	"nothing", "nuclear", "oak", "obscure", "occur", "off", "oil", "olympic",
	"onion", "opera", "orange", "ordinary", "orphan", "outer", "oven", "oxygen",
	"paddle", "palm", "panther", "park", "patch", "pattern", "peace", "pelican",
	"people", "person", "phrase", "picture", "pill", "pipe", "place", "play",
	"plug", "point", "pond", "portion", "potato", "power", "prefer", "prevent",
	"print", "prize", "profit", "proof", "proud", "pull", "punch", "purity",
	"put", "quantum", "quit", "raccoon", "radio", "rally", "range", "rather",
	"ready", "rebuild", "record", "reform", "regular", "relief", "remind", "rent",
	"replace", "resemble", "result", "reunion", "rhythm", "rich", "right", "ripple",
	"river", "robust", "rookie", "rough", "rubber", "run", "saddle", "salad",
	"salute", "satisfy", "save", "scare", "school", "scout", "scrub", "seat",
	"security", "select", "sense", "session", "shadow", "shed", "shift", "shock",
	"short", "shrug", "sibling", "sight", "silly", "since", "situate", "sketch",
	"skirt", "sleep", "slight", "slow", "smile", "snake", "soap", "soda",
	"solution", "soon", "sound", "space", "speak", "spend", "spike", "spoil",
	"spot", "spy", "stable", "stairs", "state", "stem", "still", "stone",
	"strategy", "struggle", "style", "success", "sugar", "sun", "supply", "surge",
	"suspect", "swap", "swift", "sword", "system", "tail", "tape", "tattoo",
	"tell", "tent", "thank", "theory", "thing", "this", "thrive", "ticket",
	"timber", "tired", "tobacco", "together", "tomorrow", "tool", "topple", "toss",
	"tower", "trade", "transfer", "tray", "trial", "trim", "truck", "trust",
	"tuition", "turkey", "twenty", "two", "umbrella", "uncover", "unfold", "unit",
	"until", "upgrade", "upset", "use", "usual", "vague", "van", "vast",
	"venture", "version", "viable", "video", "violin", "visit", "vocal", "volume",
	"wagon", "walnut", "warrior", "water", "weapon", "web", "welcome", "what",
	"where", "width", "win", "wink", "wisdom", "wolf", "wool", "worry",
}
