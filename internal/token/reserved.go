package token

var reserved = map[string]Kind{
	"li": Opcode,
	"a0": Register,
}

// LookupReserved возвращает тип и bool, если идентификатор зарезервирован
// (мнемоника инструкции или имя регистра). Сравнение точное и
// регистрозависимое — распознаются только lowercase-написания.
func LookupReserved(ident string) (Kind, bool) {
	k, ok := reserved[ident]
	return k, ok
}
