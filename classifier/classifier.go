// Package classifier turns a raw Bus Tracker getpredictions payload into one of
// a small set of normalized outcomes.
//
// Detection is substring based: a tag is considered present when both its
// opening and closing markers appear anywhere in the payload. The upstream
// format is a flat set of fields, so no structural XML parse is attempted.
package classifier

import (
	"regexp"
	"strings"
)

const (
	PredictionTag = "prdctdn"
	StopNameTag   = "stpnm"
	MessageTag    = "msg"

	ArrivalSeparator = "..."
	Delimiter        = "  -  "
)

type Kind int

const (
	Unrecognized Kind = iota
	Predictions
	Message
)

func (k Kind) String() string {
	switch k {
	case Predictions:
		return "predictions"
	case Message:
		return "message"
	default:
		return "unrecognized"
	}
}

// Response is the classified form of a single payload. StopName and Arrivals
// are only set for Predictions, Text only for Message.
type Response struct {
	Kind     Kind
	StopName string
	Arrivals string
	Text     string
}

// Summary renders a Predictions response as "{StopName}  -  {Arrivals}".
func (r Response) Summary() string {
	return r.StopName + Delimiter + r.Arrivals
}

var (
	predictionPattern = tagPattern(PredictionTag)
	stopNamePattern   = tagPattern(StopNameTag)
	messagePattern    = tagPattern(MessageTag)
)

// Classify never fails; missing inner content yields empty fields.
func Classify(raw string) Response {
	if ContainsTags(raw, PredictionTag) {
		return Response{
			Kind:     Predictions,
			StopName: unescape(firstCapture(stopNamePattern, raw)),
			Arrivals: arrivals(raw),
		}
	}

	if ContainsTags(raw, MessageTag) {
		return Response{
			Kind: Message,
			Text: unescape(firstCapture(messagePattern, raw)),
		}
	}

	return Response{Kind: Unrecognized}
}

// ContainsTags reports whether both <tag> and </tag> occur in raw.
func ContainsTags(raw, tag string) bool {
	return strings.Contains(raw, "<"+tag+">") && strings.Contains(raw, "</"+tag+">")
}

func arrivals(raw string) string {
	var sb strings.Builder
	for _, match := range predictionPattern.FindAllStringSubmatch(raw, -1) {
		sb.WriteString(capture(match))
		sb.WriteString(ArrivalSeparator)
	}
	return sb.String()
}

func firstCapture(re *regexp.Regexp, raw string) string {
	return capture(re.FindStringSubmatch(raw))
}

func capture(match []string) string {
	if len(match) < 2 {
		return ""
	}
	return match[1]
}

// only &amp; is decoded; the upstream is not known to emit other entities
func unescape(s string) string {
	return strings.ReplaceAll(s, "&amp;", "&")
}

func tagPattern(tag string) *regexp.Regexp {
	return regexp.MustCompile("<" + tag + ">(.*?)</" + tag + ">")
}
