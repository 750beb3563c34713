package numerics

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/11090815/hypernum/vars"
)

const digits = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Parse 按 radix 进制解析字符串，radix 的取值范围是 [2, 36]，字母不区分大小写，允许以 '-' 开头，字符串中的空白字符会被忽略。
//
// 解析从最低位开始：每读到一个数字，把 digit * place 累加到结果里，再令 place *= radix。
func Parse(s string, radix int) (Integer, error) {
	if radix < 2 || radix > len(digits) {
		return Zero, vars.ErrorInvalidArgument{Operation: "Parse", Reason: fmt.Sprintf("radix %d out of range [2, 36]", radix)}
	}

	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)

	negative := strings.HasPrefix(cleaned, "-")
	if negative {
		cleaned = cleaned[1:]
	}
	if cleaned == "" {
		return Zero, vars.ErrorInvalidFormat{Input: s, Radix: radix, Reason: "no digits"}
	}

	r := NewInt(int64(radix))
	acc, place := Zero, One
	for i := len(cleaned) - 1; i >= 0; i-- {
		d := digitValue(cleaned[i])
		if d < 0 || d >= radix {
			return Zero, vars.ErrorInvalidFormat{Input: s, Radix: radix, Reason: fmt.Sprintf("invalid digit %q", cleaned[i])}
		}
		if d != 0 {
			acc = acc.Add(place.Mul(NewInt(int64(d))))
		}
		place = place.Mul(r)
	}

	if negative {
		return acc.Neg(), nil
	}
	return acc, nil
}

func ParseHex(s string) (Integer, error) {
	return Parse(s, 16)
}

// MustParse 解析失败时 panic，适合用来定义常量。
func MustParse(s string, radix int) Integer {
	x, err := Parse(s, radix)
	if err != nil {
		panic(err)
	}
	return x
}

// TryParse 按十进制解析 s，失败时返回 (0, false)。
func TryParse(s string) (Integer, bool) {
	x, err := Parse(s, 10)
	if err != nil {
		return Zero, false
	}
	return x, true
}

// ParseLiteral 解析带进制前缀的字面量：0x/0X 为十六进制，0b/0B 为二进制，0o/0O 为八进制，没有前缀时按十进制解析。
// 负号写在前缀之前，例如 -0xff。
func ParseLiteral(s string) (Integer, error) {
	body := strings.TrimSpace(s)
	sign := ""
	if strings.HasPrefix(body, "-") {
		sign, body = "-", body[1:]
	}

	radix := 10
	if len(body) > 2 && body[0] == '0' {
		switch body[1] {
		case 'x', 'X':
			radix = 16
		case 'b', 'B':
			radix = 2
		case 'o', 'O':
			radix = 8
		}
		if radix != 10 {
			body = body[2:]
		}
	}

	x, err := Parse(sign+body, radix)
	if err != nil {
		if e, ok := err.(vars.ErrorInvalidFormat); ok {
			e.Input = s
			return Zero, e
		}
		return Zero, err
	}
	return x, nil
}

func digitValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'z':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'Z':
		return int(c-'A') + 10
	default:
		return -1
	}
}

/*⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓*/

// Text 返回 x 的 radix 进制表示，字母使用大写，负数带 '-' 前缀。radix 不在 [2, 36] 内时 panic。
func (x Integer) Text(radix int) string {
	if radix < 2 || radix > len(digits) {
		panic(vars.ErrorInvalidArgument{Operation: "Text", Reason: fmt.Sprintf("radix %d out of range [2, 36]", radix)})
	}

	mag := x.words()
	if len(mag) == 0 {
		return "0"
	}

	var buf []byte
	for len(mag) > 0 {
		var d uint32
		mag, d = divWordMag(mag, uint32(radix))
		buf = append(buf, digits[d])
	}
	if x.Sign() < 0 {
		buf = append(buf, '-')
	}

	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

func (x Integer) String() string {
	return x.Text(10)
}

// Hex 每个字输出 8 个十六进制数字，高位字在前，去掉开头的 '0'，0 输出为 "0"，负数带 '-' 前缀。
func (x Integer) Hex() string {
	mag := x.words()
	if len(mag) == 0 {
		return "0"
	}

	var sb strings.Builder
	for i := len(mag) - 1; i >= 0; i-- {
		fmt.Fprintf(&sb, "%08x", mag[i])
	}
	hex := strings.TrimLeft(sb.String(), "0")
	if x.Sign() < 0 {
		return "-" + hex
	}
	return hex
}

// Bytes 以小端序输出 |x|，长度由比特长度决定，0 输出空切片。FromBytes(x.Bytes()) 等于 |x|。
func (x Integer) Bytes() []byte {
	mag := x.words()
	b := make([]byte, (bitLenMag(mag)+7)/8)
	for i := range b {
		b[i] = byte(mag[i/4] >> (8 * uint(i%4)))
	}
	return b
}

// BigEndianBytes 以大端序输出 |x|。
func (x Integer) BigEndianBytes() []byte {
	b := x.Bytes()
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return b
}

// Words 返回绝对值的副本，低位字在前，0 返回 []uint32{0}。
func (x Integer) Words() []uint32 {
	mag := x.words()
	if len(mag) == 0 {
		return []uint32{0}
	}
	words := make([]uint32, len(mag))
	copy(words, mag)
	return words
}

func (x Integer) low64() uint64 {
	mag := x.words()
	var v uint64
	if len(mag) > 0 {
		v = uint64(mag[0])
	}
	if len(mag) > 1 {
		v |= uint64(mag[1]) << wordBits
	}
	return v
}

// Int64 返回 x 的低 64 位所表示的 int64，x 超出 int64 范围时结果没有意义。
func (x Integer) Int64() int64 {
	v := int64(x.low64())
	if x.Sign() < 0 {
		return -v
	}
	return v
}

// Uint64 返回 |x| 的低 64 位。
func (x Integer) Uint64() uint64 {
	return x.low64()
}

func (x Integer) IsInt64() bool {
	n := x.BitLen()
	if n <= 63 {
		return true
	}
	// -2^63
	return n == 64 && x.Sign() < 0 && x.TrailingZeroBits() == 63
}

func (x Integer) IsUint64() bool {
	return x.Sign() >= 0 && x.BitLen() <= 64
}

/*⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓*/

// Format 实现 fmt.Formatter，支持 %b %o %d %x %X %s %v，'#' 标志会加上 0b、0、0x、0X 前缀，
// 支持宽度以及 '-'、'0' 标志。
func (x Integer) Format(s fmt.State, ch rune) {
	var radix int
	var prefix string
	switch ch {
	case 'b':
		radix, prefix = 2, "0b"
	case 'o':
		radix, prefix = 8, "0"
	case 'd', 's', 'v':
		radix = 10
	case 'x':
		radix, prefix = 16, "0x"
	case 'X':
		radix, prefix = 16, "0X"
	default:
		fmt.Fprintf(s, "%%!%c(numerics.Integer=%s)", ch, x.String())
		return
	}

	body := x.Abs().Text(radix)
	if ch == 'x' {
		body = strings.ToLower(body)
	}

	sign := ""
	switch {
	case x.Sign() < 0:
		sign = "-"
	case s.Flag('+'):
		sign = "+"
	}
	if !s.Flag('#') {
		prefix = ""
	}

	width, hasWidth := s.Width()
	padding := 0
	if hasWidth {
		padding = width - len(sign) - len(prefix) - len(body)
	}

	switch {
	case padding <= 0:
		fmt.Fprint(s, sign, prefix, body)
	case s.Flag('-'):
		fmt.Fprint(s, sign, prefix, body, strings.Repeat(" ", padding))
	case s.Flag('0'):
		fmt.Fprint(s, sign, prefix, strings.Repeat("0", padding), body)
	default:
		fmt.Fprint(s, strings.Repeat(" ", padding), sign, prefix, body)
	}
}

// MarshalText 输出十进制文本，使 Integer 可以直接出现在 YAML、JSON 中。
func (x Integer) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText 接受 ParseLiteral 支持的所有写法。
func (x *Integer) UnmarshalText(text []byte) error {
	v, err := ParseLiteral(string(text))
	if err != nil {
		return err
	}
	*x = v
	return nil
}
