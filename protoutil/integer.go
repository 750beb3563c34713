package protoutil

import (
	"fmt"

	"github.com/11090815/hypernum/common/numerics"
	"github.com/11090815/hypernum/vars"
	"google.golang.org/protobuf/encoding/protowire"
)

// Integer 在线上按如下 protobuf 消息编码：
//
//	message Integer {
//	    sint32 sign      = 1;
//	    bytes  magnitude = 2; // 小端序、最小长度
//	}
//
// 字段按编号顺序输出，取值为 0 或空的字段省略。
const (
	IntegerSignField      protowire.Number = 1
	IntegerMagnitudeField protowire.Number = 2
)

func MarshalInteger(x numerics.Integer) []byte {
	return AppendInteger(nil, x)
}

// AppendInteger 把 x 编码后追加到 b 的末尾。
func AppendInteger(b []byte, x numerics.Integer) []byte {
	if sign := x.Sign(); sign != 0 {
		b = protowire.AppendTag(b, IntegerSignField, protowire.VarintType)
		b = protowire.AppendVarint(b, protowire.EncodeZigZag(int64(sign)))
	}
	if mag := x.Bytes(); len(mag) > 0 {
		b = protowire.AppendTag(b, IntegerMagnitudeField, protowire.BytesType)
		b = protowire.AppendBytes(b, mag)
	}
	return b
}

// AppendIntegerField 把 x 作为嵌套消息写入外层消息的 num 号字段，供余额、哈希等字段复用。
func AppendIntegerField(b []byte, num protowire.Number, x numerics.Integer) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, MarshalInteger(x))
}

// UnmarshalInteger 解码 MarshalInteger 的输出，未知字段会被跳过，符号与绝对值不一致时返回 vars.ErrorInvalidFormat。
func UnmarshalInteger(raw []byte) (numerics.Integer, error) {
	var sign int64
	var mag []byte

	for len(raw) > 0 {
		num, typ, n := protowire.ConsumeTag(raw)
		if n < 0 {
			return numerics.Zero, invalidWire("tag", protowire.ParseError(n))
		}
		raw = raw[n:]

		switch {
		case num == IntegerSignField && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(raw)
			if n < 0 {
				return numerics.Zero, invalidWire("sign", protowire.ParseError(n))
			}
			sign = protowire.DecodeZigZag(v)
			raw = raw[n:]
		case num == IntegerMagnitudeField && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(raw)
			if n < 0 {
				return numerics.Zero, invalidWire("magnitude", protowire.ParseError(n))
			}
			mag = v
			raw = raw[n:]
		case num == IntegerSignField || num == IntegerMagnitudeField:
			return numerics.Zero, vars.ErrorInvalidFormat{Reason: fmt.Sprintf("field %d has unexpected wire type %d", num, typ)}
		default:
			n := protowire.ConsumeFieldValue(num, typ, raw)
			if n < 0 {
				return numerics.Zero, invalidWire(fmt.Sprintf("unknown field %d", num), protowire.ParseError(n))
			}
			raw = raw[n:]
		}
	}

	if sign < -1 || sign > 1 {
		return numerics.Zero, vars.ErrorInvalidFormat{Reason: fmt.Sprintf("sign %d out of range", sign)}
	}

	x := numerics.FromSignedBytes(mag, int(sign))
	if x.IsZero() != (sign == 0) {
		return numerics.Zero, vars.ErrorInvalidFormat{Reason: fmt.Sprintf("sign %d does not match magnitude %x", sign, mag)}
	}
	return x, nil
}

// ConsumeIntegerField 读取 AppendIntegerField 写入的嵌套消息，返回解码结果与消耗的字节数。
func ConsumeIntegerField(b []byte) (protowire.Number, numerics.Integer, int, error) {
	num, typ, n := protowire.ConsumeTag(b)
	if n < 0 {
		return 0, numerics.Zero, 0, invalidWire("tag", protowire.ParseError(n))
	}
	if typ != protowire.BytesType {
		return 0, numerics.Zero, 0, vars.ErrorInvalidFormat{Reason: fmt.Sprintf("field %d is not a message", num)}
	}

	raw, m := protowire.ConsumeBytes(b[n:])
	if m < 0 {
		return 0, numerics.Zero, 0, invalidWire("message", protowire.ParseError(m))
	}
	x, err := UnmarshalInteger(raw)
	if err != nil {
		return 0, numerics.Zero, 0, err
	}
	return num, x, n + m, nil
}

func invalidWire(what string, err error) error {
	return vars.ErrorInvalidFormat{Reason: fmt.Sprintf("malformed %s: %s", what, err)}
}
