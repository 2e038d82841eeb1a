package sentiment

// Fixed polarity lexicons. Membership is tested after lowercasing and
// stripping non-word runes from each token. A word may appear in both lists;
// such a token counts toward both tallies and nets toward Neutral.

var positiveWords = newWordSet(
	"good", "great", "excellent", "amazing", "wonderful", "fantastic", "awesome",
	"perfect", "outstanding", "brilliant", "superb", "magnificent", "marvelous",
	"terrific", "fabulous", "incredible", "remarkable", "exceptional", "impressive",
	"successful", "effective", "efficient", "beneficial", "valuable", "useful",
	"helpful", "positive", "optimistic", "pleased", "satisfied", "happy", "delighted",
	"thrilled", "excited", "enthusiastic", "confident", "strong", "solid", "robust",
	"reliable", "trustworthy", "professional", "quality", "premium", "superior",
	"advanced", "innovative", "creative", "smart", "intelligent", "clear",
	"comprehensive", "detailed", "thorough", "complete", "accurate", "precise",
	"timely", "prompt", "fast", "quick", "smooth", "easy", "simple", "convenient",
	"comfortable", "safe", "secure", "stable", "growth", "profit", "revenue",
	"increase", "improve", "enhance", "upgrade", "optimize", "maximize", "achieve",
	"accomplish", "succeed", "win", "gain", "benefit", "advantage", "opportunity",
	"solution", "resolve", "fix", "repair", "restore", "recover", "progress",
	"advance", "develop", "expand", "build", "create", "establish", "launch",
	"introduce", "implement", "execute", "deliver", "provide", "offer", "support",
	"assist", "help", "serve", "satisfy", "meet", "exceed", "surpass", "outperform",
	"lead", "pioneer", "innovate", "transform", "revolutionize", "modernize",
	"streamline", "simplify", "clarify", "organize", "structure", "plan", "prepare",
	"ready", "available", "accessible", "open", "transparent", "honest", "fair",
	"reasonable", "affordable", "cost-effective", "economical", "budget-friendly",
	"value", "worth", "merit", "deserve", "earn", "reward", "recognize", "appreciate",
	"thank", "congratulate", "celebrate", "honor", "respect", "admire", "praise",
	"compliment", "recommend", "endorse", "approve", "accept", "agree", "confirm",
	"verify", "validate", "certify", "guarantee", "assure", "promise", "commit",
	"dedicate", "focus", "concentrate", "prioritize", "emphasize", "highlight",
	"feature", "showcase", "demonstrate", "prove", "show", "reveal", "discover",
	"find", "identify", "realize", "understand", "comprehend", "grasp", "learn",
	"know", "master", "expert", "skilled", "talented", "capable", "competent",
	"qualified", "experienced", "knowledgeable", "informed", "aware", "conscious",
	"mindful", "careful", "attentive", "focused", "dedicated", "committed", "loyal",
	"faithful", "devoted", "passionate", "motivated", "inspired", "encouraged",
	"supported", "backed", "endorsed", "recommended", "preferred", "chosen",
	"selected", "picked", "favored", "liked", "loved", "adored", "cherished",
	"treasured", "valued", "prized", "honored", "respected", "admired", "appreciated",
	"grateful", "thankful", "blessed", "fortunate", "lucky", "prosperous", "thriving",
	"flourishing", "booming", "growing", "expanding", "developing", "progressing",
	"advancing", "improving", "enhancing", "upgrading", "optimizing", "maximizing",
	"increasing", "rising", "climbing", "soaring", "skyrocketing", "surging",
	"spiking", "jumping", "leaping", "bouncing", "recovering", "rebounding",
	"returning", "restoring", "reviving", "renewing", "refreshing", "rejuvenating",
	"revitalizing", "energizing", "invigorating", "stimulating", "motivating",
	"inspiring", "encouraging", "uplifting", "boosting", "strengthening", "empowering",
	"enabling", "facilitating", "supporting", "assisting", "helping", "serving",
	"providing", "offering", "delivering", "supplying", "furnishing", "equipping",
	"preparing", "readying", "organizing", "arranging", "planning", "designing",
	"creating", "building", "constructing", "establishing", "founding", "launching",
	"introducing", "implementing", "executing", "performing", "achieving",
	"accomplishing", "completing", "finishing", "concluding", "ending", "closing",
	"wrapping", "finalizing", "securing", "obtaining", "acquiring", "gaining",
	"earning", "winning", "capturing", "seizing", "grasping", "holding", "maintaining",
	"keeping", "preserving", "protecting", "safeguarding", "defending", "shielding",
	"covering", "insuring", "ensuring", "guaranteeing", "promising", "committing",
	"pledging", "vowing", "swearing", "declaring", "stating", "announcing",
	"proclaiming", "revealing", "disclosing", "sharing", "communicating", "expressing",
	"conveying", "transmitting", "presenting", "showing", "displaying", "exhibiting",
	"demonstrating", "illustrating", "explaining", "clarifying", "describing",
	"detailing", "outlining", "summarizing", "highlighting", "emphasizing",
	"stressing", "underscoring", "accentuating", "featuring", "showcasing",
	"promoting", "advertising", "marketing", "selling", "catering", "accommodating",
	"satisfying", "fulfilling", "meeting", "exceeding", "surpassing", "outperforming",
	"outdoing", "beating", "defeating", "conquering", "overcoming", "surmounting",
	"transcending", "ascending", "scaling", "reaching", "attaining", "realizing",
	"succeeding", "triumphing", "prevailing", "victorious", "champion", "leader",
	"innovator", "creator", "founder", "builder", "developer", "designer", "architect",
	"engineer", "scientist", "researcher", "analyst", "specialist", "authority",
	"guru", "wizard", "genius", "clever", "wise", "educated", "learned", "scholarly",
	"academic", "intellectual", "thoughtful", "insightful", "perceptive", "observant",
	"alert", "vigilant", "watchful", "cautious", "prudent", "sensible", "rational",
	"logical", "practical", "realistic", "pragmatic", "down-to-earth", "grounded",
	"steady", "consistent", "dependable", "truthful", "sincere", "genuine",
	"authentic", "real", "actual", "factual", "exact", "correct", "right", "proper",
	"appropriate", "suitable", "fitting", "ideal", "optimal", "best", "top",
	"high-quality", "extraordinary", "spectacular", "stunning", "breathtaking",
	"striking", "notable", "noteworthy", "significant", "important", "precious",
	"priceless", "invaluable", "worthwhile", "advantageous", "profitable", "lucrative",
	"rewarding", "fruitful", "productive",
)

var negativeWords = newWordSet(
	"bad", "terrible", "awful", "horrible", "disgusting", "nasty", "gross", "ugly",
	"hideous", "repulsive", "revolting", "appalling", "shocking", "disturbing",
	"alarming", "concerning", "worrying", "troubling", "problematic", "difficult",
	"challenging", "hard", "tough", "rough", "harsh", "severe", "serious", "critical",
	"dangerous", "risky", "unsafe", "insecure", "unstable", "unreliable",
	"untrustworthy", "dishonest", "false", "fake", "fraudulent", "deceptive",
	"misleading", "confusing", "unclear", "ambiguous", "vague", "incomplete",
	"insufficient", "inadequate", "poor", "low", "inferior", "substandard", "mediocre",
	"average", "ordinary", "common", "typical", "normal", "regular", "standard",
	"basic", "simple", "plain", "boring", "dull", "tedious", "monotonous",
	"repetitive", "routine", "mundane", "uninteresting", "unexciting", "uninspiring",
	"unmotivating", "discouraging", "disappointing", "frustrating", "annoying",
	"irritating", "aggravating", "bothersome", "troublesome", "fail", "failure",
	"failed", "failing", "unsuccessful", "lose", "loss", "lost", "losing", "defeat",
	"beaten", "wrong", "incorrect", "mistake", "error", "fault", "flaw", "defect",
	"problem", "issue", "trouble", "difficulty", "challenge", "obstacle", "barrier",
	"hindrance", "impediment", "setback", "delay", "postpone", "cancel", "reject",
	"refuse", "deny", "decline", "disapprove", "disagree", "oppose", "resist", "fight",
	"argue", "dispute", "conflict", "clash", "compete", "rival", "enemy", "opponent",
	"adversary", "competitor", "threat", "risk", "danger", "hazard", "peril",
	"jeopardy", "vulnerability", "weakness", "shortcoming", "limitation",
	"restriction", "constraint", "boundary", "limit", "cap", "ceiling", "maximum",
	"minimum", "least", "worst", "bottom", "down", "decrease", "drop", "fall",
	"plummet", "crash", "collapse", "break", "shatter", "destroy", "damage", "harm",
	"hurt", "injure", "wound", "pain", "suffer", "struggle", "battle", "war",
	"argument", "disagreement", "misunderstanding", "confusion", "chaos", "disorder",
	"mess", "clutter", "disorganization", "inefficiency", "waste", "deficit",
	"shortage", "lack", "absence", "missing", "gone", "disappeared", "vanished",
	"extinct", "dead", "died", "death", "kill", "murder", "assassinate", "execute",
	"eliminate", "remove", "delete", "erase", "wipe", "clean", "clear", "empty",
	"vacant", "blank", "void", "null", "nothing", "none", "zero", "negative", "minus",
	"less", "fewer", "smaller", "shorter", "lower", "weaker", "slower", "later",
	"behind", "back", "backward", "reverse", "opposite", "contrary", "against", "anti",
	"counter",
)

func newWordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
