package rules

import "regexp"

// RequiredScriptRefs are the external runtime scripts every artifact must
// reference by exact path: the host bridge and the shared engine shim.
var RequiredScriptRefs = []string{
	"js/host-bridge.js",
	"js/engine.js",
}

var defaultRegistry = newBuiltinRegistry()

// Default returns the process-wide builtin registry. It is constructed once
// and must never be mutated; concurrent readers need no locking.
func Default() *Registry { return defaultRegistry }

func newBuiltinRegistry() *Registry {
	return &Registry{
		elements: []ElementRule{
			{
				Name:      "game-canvas",
				Label:     "game canvas element",
				Selectors: []string{"canvas#game-canvas", "canvas#gameCanvas", "canvas"},
				Required:  true,
			},
			{
				Name:      "score-display",
				Label:     "score display element",
				Selectors: []string{"#score", ".score", "[data-score]"},
				Required:  false,
			},
			{
				Name:      "instructions",
				Label:     "player instructions block",
				Selectors: []string{"#instructions", ".instructions"},
				Required:  false,
			},
		},
		scriptRefs: RequiredScriptRefs,
		logicRules: []PatternRule{
			{
				Name:     "canvas-context",
				Label:    "canvas 2d rendering context",
				Expr:     regexp.MustCompile(`getContext\s*\(\s*['"]2d['"]`),
				Required: true,
			},
			{
				Name:     "animation-frame",
				Label:    "requestAnimationFrame call",
				Expr:     regexp.MustCompile(`requestAnimationFrame\s*\(`),
				Required: true,
			},
			{
				Name:     "input-handler",
				Label:    "input event listener",
				Expr:     regexp.MustCompile(`addEventListener\s*\(`),
				Required: true,
			},
			{
				Name:     "update-function",
				Label:    "update function",
				Expr:     regexp.MustCompile(`\bupdate\w*\s*\(`),
				Required: true,
			},
			{
				Name:     "draw-function",
				Label:    "draw or render function",
				Expr:     regexp.MustCompile(`\b(draw|render)\w*\s*\(`),
				Required: true,
			},
			{
				Name:     "game-state",
				Label:    "game state tracking",
				Expr:     regexp.MustCompile(`\bgameState\b|\bstate\s*=`),
				Required: true,
			},
		},
		bonusRules: []PatternRule{
			{
				Name:  "error-handling",
				Label: "try/catch error handling",
				Expr:  regexp.MustCompile(`\btry\s*\{`),
			},
			{
				Name:  "render-loop",
				Label: "named render-loop callback",
				Expr:  regexp.MustCompile(`requestAnimationFrame\s*\(\s*[A-Za-z_$][\w$]*\s*\)`),
			},
			{
				Name:  "clamped-range",
				Label: "clamped numeric range idiom",
				Expr:  regexp.MustCompile(`Math\.(max|min)\s*\(`),
			},
		},
		readyRule: PatternRule{
			Name:     "bridge-ready",
			Label:    "bridge readiness signal",
			Expr:     regexp.MustCompile(`[Bb]ridge\s*\.\s*ready\s*\(|postMessage\s*\(\s*\{\s*['"]?type['"]?\s*:\s*['"]ready['"]`),
			Required: true,
		},
		startRule: PatternRule{
			Name:     "game-start",
			Label:    "game start call",
			Expr:     regexp.MustCompile(`[Bb]ridge\s*\.\s*start\s*\(|\bstartGame\s*\(`),
			Required: true,
		},
		unwrapRule: PatternRule{
			Name:  "payload-unwrap",
			Label: "defensive event payload access",
			Expr:  regexp.MustCompile(`event\.data\s*\|\|\s*\{\}|const\s*\{[^}]*\}\s*=\s*\(?\s*event\.data`),
		},
		misspellings: map[string]string{
			"lenght":          "length",
			"widht":           "width",
			"heigth":          "height",
			"fucntion":        "function",
			"retrun":          "return",
			"addEventListner": "addEventListener",
			"getElementByID":  "getElementById",
		},
		genres: builtinGenres(),
	}
}

func builtinGenres() map[string]*GenreBundle {
	return map[string]*GenreBundle{
		"physics": {
			Name: "physics",
			Patterns: []PatternRule{
				{Name: "gravity", Label: "gravity simulation", Expr: regexp.MustCompile(`(?i)gravity`), Required: true},
				{Name: "velocity", Label: "velocity tracking", Expr: regexp.MustCompile(`(?i)velocity|\bvel[xy]?\b`), Required: true},
				{Name: "collision", Label: "collision detection", Expr: regexp.MustCompile(`(?i)collision|collide`), Required: true},
				{Name: "trigonometry", Label: "trigonometric functions", Expr: regexp.MustCompile(`Math\.(sin|cos|atan2)\b`), Required: true},
			},
			Features: []FeatureRule{
				{Name: "particle effects", Aliases: []string{"particle", "particles"}},
				{Name: "bounce restitution", Aliases: []string{"bounce", "restitution", "elastic"}},
				{Name: "friction or damping", Aliases: []string{"friction", "damping", "drag"}},
			},
		},
		"platformer": {
			Name: "platformer",
			Patterns: []PatternRule{
				{Name: "jump", Label: "jump mechanic", Expr: regexp.MustCompile(`(?i)\bjump`), Required: true},
				{Name: "gravity", Label: "gravity simulation", Expr: regexp.MustCompile(`(?i)gravity`), Required: true},
				{Name: "platforms", Label: "platform collision", Expr: regexp.MustCompile(`(?i)platform`), Required: true},
				{Name: "scrolling", Label: "camera or scrolling", Expr: regexp.MustCompile(`(?i)scroll|camera`), Required: true},
			},
			Features: []FeatureRule{
				{Name: "collectibles", Aliases: []string{"coin", "collect", "pickup"}},
				{Name: "enemies", Aliases: []string{"enemy", "enemies", "hazard"}},
				{Name: "lives or health", Aliases: []string{"lives", "health", "hp"}},
			},
		},
		"puzzle": {
			Name: "puzzle",
			Patterns: []PatternRule{
				{Name: "grid", Label: "grid or board layout", Expr: regexp.MustCompile(`(?i)\bgrid\b|\bboard\b`), Required: true},
				{Name: "solve-logic", Label: "match or solve logic", Expr: regexp.MustCompile(`(?i)match|solve`), Required: true},
				{Name: "move-counter", Label: "move counting", Expr: regexp.MustCompile(`(?i)\bmoves?\b|moveCount`), Required: true},
			},
			Features: []FeatureRule{
				{Name: "undo", Aliases: []string{"undo", "history"}},
				{Name: "hints", Aliases: []string{"hint", "hints"}},
				{Name: "levels", Aliases: []string{"level", "levels", "stage"}},
			},
		},
		"arcade": {
			Name: "arcade",
			Patterns: []PatternRule{
				{Name: "spawning", Label: "entity spawning", Expr: regexp.MustCompile(`(?i)spawn`), Required: true},
				{Name: "difficulty", Label: "difficulty progression", Expr: regexp.MustCompile(`(?i)difficulty|speed\s*\+=|level\s*\+\+`), Required: true},
				{Name: "score-increment", Label: "score accumulation", Expr: regexp.MustCompile(`(?i)score\s*\+[=+]`), Required: true},
			},
			Features: []FeatureRule{
				{Name: "high score", Aliases: []string{"highscore", "high score", "best"}},
				{Name: "lives or health", Aliases: []string{"lives", "health", "hp"}},
				{Name: "power-ups", Aliases: []string{"powerup", "power-up", "boost"}},
			},
		},
		"racing": {
			Name: "racing",
			Patterns: []PatternRule{
				{Name: "speed", Label: "speed or acceleration", Expr: regexp.MustCompile(`(?i)\bspeed\b|acceleration`), Required: true},
				{Name: "steering", Label: "steering control", Expr: regexp.MustCompile(`(?i)steer|turn|angle`), Required: true},
				{Name: "track", Label: "track or lap layout", Expr: regexp.MustCompile(`(?i)\btrack\b|\blaps?\b`), Required: true},
			},
			Features: []FeatureRule{
				{Name: "timer", Aliases: []string{"timer", "elapsed", "countdown"}},
				{Name: "obstacles", Aliases: []string{"obstacle", "obstacles", "traffic"}},
				{Name: "boost", Aliases: []string{"boost", "nitro", "turbo"}},
			},
		},
	}
}
