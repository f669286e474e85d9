package lexer

// Kind is the lexical class of a token.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindReserved
	KindIdentifier
	KindNumber
	KindString
	KindOperator
	KindSymbol
)

// Token is one lexical unit of pseudocode source. Text holds the raw
// lexeme, except for string literals where the surrounding quotes are
// stripped. Line is 1-based and used only for diagnostics; after a
// comment it is approximate (comments and newlines both advance it).
type Token struct {
	Kind Kind
	Text string
	Line int
}

// reservedWords is the closed keyword set of the pseudocode language.
// Matching is exact and case-sensitive: "algoritmo" is an identifier.
var reservedWords = map[string]struct{}{
	"Algoritmo": {}, "FinAlgoritmo": {},
	"Proceso": {}, "FinProceso": {},
	"SubProceso": {}, "FinSubProceso": {},
	"Si": {}, "Entonces": {}, "Sino": {}, "FinSi": {},
	"Segun": {}, "FinSegun": {},
	"Para": {}, "FinPara": {},
	"Mientras": {}, "FinMientras": {},
	"Repetir": {}, "Hasta": {},
	"Escribir": {}, "Leer": {},
	"Funcion": {}, "FinFuncion": {}, "Retornar": {},
	"Verdadero": {}, "Falso": {},
}
