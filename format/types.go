package format

import "strings"

type (
	Strategy        uint8
	TreeParser      uint8
	CompressionType uint8
)

const (
	StrategyStream Strategy = 0x1 // StrategyStream folds the values array while it is being parsed.
	StrategyWhole  Strategy = 0x2 // StrategyWhole parses the document into a generic tree first.
	StrategyScan   Strategy = 0x3 // StrategyScan locates the values array with a path query.

	ParserStd      TreeParser = 0x1 // ParserStd builds the tree with encoding/json.
	ParserJsoniter TreeParser = 0x2 // ParserJsoniter builds the tree with json-iterator.
	ParserGoccy    TreeParser = 0x3 // ParserGoccy builds the tree with goccy/go-json.
	ParserSonic    TreeParser = 0x4 // ParserSonic builds the tree with bytedance/sonic.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// String returns the report column name of the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyStream:
		return "Custom"
	case StrategyWhole:
		return "Whole"
	case StrategyScan:
		return "Scan"
	default:
		return "Unknown"
	}
}

// ParseStrategy maps a column name (case-insensitive) back to its Strategy.
func ParseStrategy(name string) (Strategy, bool) {
	for _, s := range []Strategy{StrategyStream, StrategyWhole, StrategyScan} {
		if strings.EqualFold(s.String(), name) {
			return s, true
		}
	}

	return 0, false
}

// ParseTreeParser maps a backend name (case-insensitive) back to its TreeParser.
func ParseTreeParser(name string) (TreeParser, bool) {
	for _, p := range []TreeParser{ParserStd, ParserJsoniter, ParserGoccy, ParserSonic} {
		if strings.EqualFold(p.String(), name) {
			return p, true
		}
	}

	return 0, false
}

func (p TreeParser) String() string {
	switch p {
	case ParserStd:
		return "Std"
	case ParserJsoniter:
		return "Jsoniter"
	case ParserGoccy:
		return "Goccy"
	case ParserSonic:
		return "Sonic"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
