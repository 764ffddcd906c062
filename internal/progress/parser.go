// Package progress parses curl's carriage-return delimited progress meter.
package progress

import "strings"

// Sample is one decoded progress record. All fields are curl's own display
// strings (e.g. "1024k", "00:01:02"); they are relayed, never parsed into
// numbers. Missing trailing fields are empty.
type Sample struct {
	TotalPercent       string
	TotalSize          string
	ReceivedPercent    string
	ReceivedSize       string
	TransferredPercent string
	TransferredSize    string
	AvgDownloadRate    string
	AvgUploadRate      string
	TotalTime          string
	ElapsedTime        string
	RemainingTime      string
	CurrentRate        string
}

const fieldCount = 12

// Parser assembles complete progress records from a chunked byte stream.
// Chunks may split a record anywhere; partial trailing data is carried over
// to the next Feed call. A Parser is good for one invocation's stream.
type Parser struct {
	buf  []byte
	emit func(Sample)
}

// NewParser returns a Parser that calls emit synchronously for every
// complete record extracted during Feed.
func NewParser(emit func(Sample)) *Parser {
	return &Parser{emit: emit}
}

// Feed appends chunk to the internal buffer and emits every complete record.
// A complete record is the payload between two carriage returns. The closing
// delimiter doubles as the next record's opener — the tool prefixes each
// meter update with a single carriage return — so it stays in the buffer;
// the opener and any bytes preceding it are consumed.
func (p *Parser) Feed(chunk []byte) {
	p.buf = append(p.buf, chunk...)
	for {
		open := indexCR(p.buf, 0)
		if open < 0 {
			return
		}
		end := indexCR(p.buf, open+1)
		if end < 0 {
			return
		}
		payload := string(p.buf[open+1 : end])
		p.buf = p.buf[end:]
		p.emit(parseRecord(payload))
	}
}

func indexCR(b []byte, from int) int {
	for i := from; i < len(b); i++ {
		if b[i] == '\r' {
			return i
		}
	}
	return -1
}

func parseRecord(payload string) Sample {
	fields := strings.Fields(payload)
	var cols [fieldCount]string
	for i := 0; i < fieldCount && i < len(fields); i++ {
		cols[i] = fields[i]
	}
	return Sample{
		TotalPercent:       cols[0],
		TotalSize:          cols[1],
		ReceivedPercent:    cols[2],
		ReceivedSize:       cols[3],
		TransferredPercent: cols[4],
		TransferredSize:    cols[5],
		AvgDownloadRate:    cols[6],
		AvgUploadRate:      cols[7],
		TotalTime:          cols[8],
		ElapsedTime:        cols[9],
		RemainingTime:      cols[10],
		CurrentRate:        cols[11],
	}
}
