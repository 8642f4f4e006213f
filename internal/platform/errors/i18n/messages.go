package i18n

// Error codes must match the codes defined in internal/platform/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeDiceInvalidNotation    = "DICE_INVALID_NOTATION"
	CodeDiceInvalidSize        = "DICE_INVALID_SIZE"
	CodeDiceInvalidQuantity    = "DICE_INVALID_QUANTITY"
	CodeDiceMissing            = "DICE_MISSING"
	CodeDiceExcessiveQuantity  = "DICE_EXCESSIVE_QUANTITY"
	CodeRulesInvalidKeep       = "RULES_INVALID_KEEP"
	CodeRulesInvalidHitchOn    = "RULES_INVALID_HITCH_ON"
	CodeRulesInvalidDifficulty = "RULES_INVALID_DIFFICULTY"
	CodeRulesInvalidMaxDice    = "RULES_INVALID_MAX_DICE"
	CodeRulesInvalidSamples    = "RULES_INVALID_SAMPLES"
)

var enUSCatalog = &Catalog{
	locale: "en-US",
	messages: map[Code]string{
		CodeDiceInvalidNotation:    "{{.Token}} is not a valid die or dice.",
		CodeDiceInvalidSize:        "{{.Token}} is not a valid die size. You may only use dice with sizes of 4, 6, 8, 10, or 12.",
		CodeDiceInvalidQuantity:    "{{.Token}} must be greater than zero.",
		CodeDiceMissing:            "There were no valid dice in that command.",
		CodeDiceExcessiveQuantity:  "You can't use that many dice (limit {{.Limit}}).",
		CodeRulesInvalidKeep:       "Keep must be greater than zero.",
		CodeRulesInvalidHitchOn:    "Hitch threshold must be between 1 and 11.",
		CodeRulesInvalidDifficulty: "Difficulty cannot be negative.",
		CodeRulesInvalidMaxDice:    "The dice limit must be between 0 and {{.Limit}}.",
		CodeRulesInvalidSamples:    "The number of rolls must be between 1 and {{.Limit}}.",
	},
}

var ptBRCatalog = &Catalog{
	locale: "pt-BR",
	messages: map[Code]string{
		CodeDiceInvalidNotation:    "{{.Token}} não é um dado válido.",
		CodeDiceInvalidSize:        "{{.Token}} não é um tamanho de dado válido. Use apenas dados de 4, 6, 8, 10 ou 12 lados.",
		CodeDiceInvalidQuantity:    "{{.Token}} deve ser maior que zero.",
		CodeDiceMissing:            "Nenhum dado válido foi encontrado no comando.",
		CodeDiceExcessiveQuantity:  "Você não pode usar tantos dados (limite {{.Limit}}).",
		CodeRulesInvalidKeep:       "A quantidade mantida deve ser maior que zero.",
		CodeRulesInvalidHitchOn:    "O limite de complicação deve estar entre 1 e 11.",
		CodeRulesInvalidDifficulty: "A dificuldade não pode ser negativa.",
		CodeRulesInvalidMaxDice:    "O limite de dados deve estar entre 0 e {{.Limit}}.",
		CodeRulesInvalidSamples:    "O número de rolagens deve estar entre 1 e {{.Limit}}.",
	},
}
