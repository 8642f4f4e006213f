package render

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	message.SetString(lang, keyBotch, defaultBotch)
	message.SetString(lang, keyOnlyTotal, "Only Total: %d (%s) with Effect: %s")
	message.SetString(lang, keyBestTotal, "Best Total: %d (%s) with Effect: %s")
	message.SetString(lang, keyBestEffect, "Best Effect: %s with Total: %d (%s)")
	message.SetString(lang, keyHitches, "Hitches: %d")
	message.SetString(lang, keyIgnored, "Ignored: %s")
	message.SetString(lang, keySeed, "Seed: %s")
	message.SetString(lang, keySample, "Roll #%d")
	message.SetString(lang, keyCheckSuccess, "Beats difficulty %d by %d")
	message.SetString(lang, keyCheckHeroic, "Heroic success over difficulty %d by %d")
	message.SetString(lang, keyCheckFailure, "Misses difficulty %d by %d")
	message.SetString(lang, keyPoolAdded, "%s (added %s)")
	message.SetString(lang, keyPoolEmpty, defaultPoolEmpty)
}
