package codegen

import (
	"errors"
	"fmt"
)

// 产品编码共 13 位：[2 位分组][3 位品牌][3 位折射率][5 位序列]
// 前 8 位为前缀，同前缀的产品共享一条递增序列。
// 序列为混合进制计数：末位依次经过 0-9 再 A-Z，之后高 4 位进位并重置为 0：
//
//	00000 … 00009, 0000A … 0000Z, 00010 … 00019, 0001A …
const (
	CodeLength     = 13
	PrefixLength   = 8
	SequenceLength = 5

	// FirstSequence 前缀下尚无编码时的起始序列
	FirstSequence = "00000"
)

var (
	// ErrBadSequence 序列串格式非法
	ErrBadSequence = errors.New("malformed sequence")
	// ErrSequenceExhausted 序列空间已用尽（9999Z 之后无法进位）
	ErrSequenceExhausted = errors.New("sequence space exhausted")
)

// ParseSequence 解析 5 位序列串为高位组和末位符号
func ParseSequence(seq string) (group int, last byte, err error) {
	if len(seq) != SequenceLength {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadSequence, seq)
	}
	for i := 0; i < SequenceLength-1; i++ {
		if seq[i] < '0' || seq[i] > '9' {
			return 0, 0, fmt.Errorf("%w: %q", ErrBadSequence, seq)
		}
		group = group*10 + int(seq[i]-'0')
	}
	last = seq[SequenceLength-1]
	if (last < '0' || last > '9') && (last < 'A' || last > 'Z') {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadSequence, seq)
	}
	return group, last, nil
}

// FormatSequence 格式化为固定 5 位序列串
func FormatSequence(group int, last byte) string {
	return fmt.Sprintf("%04d%c", group, last)
}

// NextSequence 计算下一个序列值：数字 9 之后进入字母 A，字母 Z 之后高位进位并重置为 0
func NextSequence(seq string) (string, error) {
	group, last, err := ParseSequence(seq)
	if err != nil {
		return "", err
	}

	switch {
	case last == 'Z':
		if group >= 9999 {
			return "", fmt.Errorf("%w: after %q", ErrSequenceExhausted, seq)
		}
		return FormatSequence(group+1, '0'), nil
	case last >= 'A':
		return FormatSequence(group, last+1), nil
	case last == '9':
		return FormatSequence(group, 'A'), nil
	default:
		return FormatSequence(group, last+1), nil
	}
}
