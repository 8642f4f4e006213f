package render

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.MustParse("pt-BR")

	message.SetString(lang, keyBotch, "Desastre!")
	message.SetString(lang, keyOnlyTotal, "Apenas Total: %d (%s) com Efeito: %s")
	message.SetString(lang, keyBestTotal, "Melhor Total: %d (%s) com Efeito: %s")
	message.SetString(lang, keyBestEffect, "Melhor Efeito: %s com Total: %d (%s)")
	message.SetString(lang, keyHitches, "Complicações: %d")
	message.SetString(lang, keyIgnored, "Ignorados: %s")
	message.SetString(lang, keySeed, "Semente: %s")
	message.SetString(lang, keySample, "Rolagem #%d")
	message.SetString(lang, keyCheckSuccess, "Supera a dificuldade %d por %d")
	message.SetString(lang, keyCheckHeroic, "Sucesso heroico sobre a dificuldade %d por %d")
	message.SetString(lang, keyCheckFailure, "Não alcança a dificuldade %d por %d")
	message.SetString(lang, keyPoolAdded, "%s (adicionados %s)")
	message.SetString(lang, keyPoolEmpty, "A reserva está vazia.")
}
