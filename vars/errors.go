package vars

import (
	"fmt"
	"runtime"
	"strings"
)

const PrefixPath = "github.com/11090815/"

type PathError struct {
	err   string
	path  string
	cause error
}

func (pe PathError) Error() string {
	return fmt.Sprintf("[%s] => {%s}", pe.path, pe.err)
}

// Unwrap 返回被包装的原始错误（如果有的话），便于 errors.As 顺着错误链找到具体的错误类型。
func (pe PathError) Unwrap() error {
	return pe.cause
}

// NewPathError 记录调用者所在的文件、函数与行号。
func NewPathError(err string) PathError {
	return newPathError(err, nil, 2)
}

// WrapPathError 与 NewPathError 类似，但会保留原始错误 cause，错误信息取自 cause.Error()。
func WrapPathError(cause error) error {
	if cause == nil {
		return nil
	}
	return newPathError(cause.Error(), cause, 2)
}

func newPathError(err string, cause error, skip int) PathError {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return PathError{
			err:   err,
			path:  "unknown path",
			cause: cause,
		}
	}

	index := strings.Index(file, PrefixPath)
	if index == -1 {
		file = "unknown file"
	} else {
		file = file[index+len(PrefixPath):]
	}

	funcName := runtime.FuncForPC(pc).Name()
	index = strings.LastIndex(funcName, ".")
	if index == -1 {
		funcName = "unknown function"
	} else {
		funcName = funcName[index+1:]
	}

	return PathError{
		err:   err,
		path:  fmt.Sprintf("\"%s\" \"%s\" #%d", file, funcName, line),
		cause: cause,
	}
}

/*⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓*/

// ErrorInvalidFormat 数字字符串格式错误，或者某个字符代表的数值超出了进制 Radix 的范围。
// 解码线上传输的整数消息失败时也返回此错误，此时 Radix 为 0。
type ErrorInvalidFormat struct {
	Input  string
	Radix  int
	Reason string
}

func (err ErrorInvalidFormat) Error() string {
	if err.Radix == 0 {
		return fmt.Sprintf("invalid integer format: [%s]", err.Reason)
	}
	return fmt.Sprintf("invalid integer format %q in radix %d: [%s]", err.Input, err.Radix, err.Reason)
}

/*⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓*/

// ErrorInvalidArgument 例如：模幂运算的指数为负数、对负数开平方、模数为 0、进制不在 [2, 36] 之间。
type ErrorInvalidArgument struct {
	Operation string
	Reason    string
}

func (err ErrorInvalidArgument) Error() string {
	return fmt.Sprintf("invalid argument for %s: [%s]", err.Operation, err.Reason)
}

/*⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓*/

// ErrorNoInverseExists gcd(Value, Modulus) != 1，因此 Value 在模 Modulus 下没有逆元。
type ErrorNoInverseExists struct {
	Value   string
	Modulus string
}

func (err ErrorNoInverseExists) Error() string {
	return fmt.Sprintf("%s has no inverse modulo %s", err.Value, err.Modulus)
}

/*⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓*/

// ErrorStackUnderflow 求值栈上的操作数不足以执行 Token。
type ErrorStackUnderflow struct {
	Token string
	Need  int
	Have  int
}

func (err ErrorStackUnderflow) Error() string {
	return fmt.Sprintf("stack underflow at %q: need %d operands, have %d", err.Token, err.Need, err.Have)
}

// ErrorUnknownToken Token 既不是运算符，也不能被解析成整数字面量。
type ErrorUnknownToken struct {
	Token string
}

func (err ErrorUnknownToken) Error() string {
	return fmt.Sprintf("unknown token %q", err.Token)
}
