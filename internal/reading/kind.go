package reading

// Kind 占卜类型
type Kind string

const (
	KindTarot      Kind = "tarot"
	KindIChing     Kind = "iching"
	KindBazi       Kind = "bazi"
	KindAstrology  Kind = "astrology"
	KindNumerology Kind = "numerology"
	KindPalm       Kind = "palm"
	KindFace       Kind = "face"
	KindCombined   Kind = "combined"
)

// Kinds 全部类型
var Kinds = []Kind{
	KindTarot,
	KindIChing,
	KindBazi,
	KindAstrology,
	KindNumerology,
	KindPalm,
	KindFace,
	KindCombined,
}

// ParseKind 解析类型字符串
func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}
