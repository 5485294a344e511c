package transformers

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	apperrors "realestate-valley/internal/errors"
	"realestate-valley/internal/models"
)

// Result codes the feed uses for a successful response.
var successResultCodes = map[string]bool{"00": true, "000": true}

// noDataResultCode marks a month without deals; it is an empty feed.
const noDataResultCode = "03"

type tradeItemXML struct {
	AptName    string `xml:"aptNm"`
	DealAmount string `xml:"dealAmount"`
	Area       string `xml:"excluUseAr"`
	Floor      string `xml:"floor"`
	DealYear   string `xml:"dealYear"`
	DealMonth  string `xml:"dealMonth"`
	DealDay    string `xml:"dealDay"`
	Dong       string `xml:"umdNm"`
	BuildYear  string `xml:"buildYear"`
	Jibun      string `xml:"jibun"`
	DealingGbn string `xml:"dealingGbn"`
	AptDong    string `xml:"aptDong"`
}

func (it tradeItemXML) record() models.TransactionRecord {
	return models.TransactionRecord{
		AptName:   strings.TrimSpace(it.AptName),
		Price:     strings.ReplaceAll(strings.TrimSpace(it.DealAmount), ",", ""),
		Area:      strings.TrimSpace(it.Area),
		Floor:     strings.TrimSpace(it.Floor),
		Year:      strings.TrimSpace(it.DealYear),
		Month:     strings.TrimSpace(it.DealMonth),
		Day:       strings.TrimSpace(it.DealDay),
		Dong:      strings.TrimSpace(it.Dong),
		BuildYear: strings.TrimSpace(it.BuildYear),
		Jibun:     strings.TrimSpace(it.Jibun),
		DealType:  strings.TrimSpace(it.DealingGbn),
		AptDong:   strings.TrimSpace(it.AptDong),
	}
}

type tradeFeedParser struct{}

func NewTradeFeedParser() TradeFeedParser {
	return &tradeFeedParser{}
}

// Parse walks the document token by token. Each <item> at any depth becomes
// one record; header elements are picked up wherever they appear.
func (p *tradeFeedParser) Parse(r io.Reader) (*models.TransactionFeed, error) {
	dec := xml.NewDecoder(r)
	feed := &models.TransactionFeed{TotalCount: -1, Records: []models.TransactionRecord{}}

	var (
		sawRoot    bool
		reasonCode string
		authMsg    string
		errMsg     string
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrParseFailed, err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		sawRoot = true

		switch start.Name.Local {
		case "item":
			var it tradeItemXML
			if err := dec.DecodeElement(&it, &start); err != nil {
				return nil, fmt.Errorf("%w: item %d: %v", apperrors.ErrParseFailed, len(feed.Records)+1, err)
			}
			feed.Records = append(feed.Records, it.record())
		case "resultCode":
			feed.ResultCode, err = decodeText(dec, &start)
		case "resultMsg":
			feed.ResultMsg, err = decodeText(dec, &start)
		case "returnReasonCode":
			reasonCode, err = decodeText(dec, &start)
		case "returnAuthMsg":
			authMsg, err = decodeText(dec, &start)
		case "errMsg":
			errMsg, err = decodeText(dec, &start)
		case "totalCount":
			feed.TotalCount, err = decodeInt(dec, &start, -1)
		case "pageNo":
			feed.PageNo, err = decodeInt(dec, &start, 0)
		case "numOfRows":
			feed.NumOfRows, err = decodeInt(dec, &start, 0)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", apperrors.ErrParseFailed, start.Name.Local, err)
		}
	}

	if !sawRoot {
		return nil, fmt.Errorf("%w: no XML element found", apperrors.ErrParseFailed)
	}

	// data.go.kr gateway errors arrive as OpenAPI_ServiceResponse
	if reasonCode != "" && !successResultCodes[reasonCode] {
		return nil, fmt.Errorf("%w: gateway error %s: %s %s", apperrors.ErrFetchFailed, reasonCode, errMsg, authMsg)
	}
	if feed.ResultCode != "" && !successResultCodes[feed.ResultCode] && feed.ResultCode != noDataResultCode {
		return nil, fmt.Errorf("%w: result code %s: %s", apperrors.ErrFetchFailed, feed.ResultCode, feed.ResultMsg)
	}

	feed.Truncated = feed.TotalCount > len(feed.Records)
	return feed, nil
}

func decodeText(dec *xml.Decoder, start *xml.StartElement) (string, error) {
	var s string
	if err := dec.DecodeElement(&s, start); err != nil {
		return "", err
	}
	return strings.TrimSpace(s), nil
}

// decodeInt returns fallback for empty or non-numeric text; only malformed
// XML is an error.
func decodeInt(dec *xml.Decoder, start *xml.StartElement, fallback int) (int, error) {
	s, err := decodeText(dec, start)
	if err != nil {
		return fallback, err
	}
	n, convErr := strconv.Atoi(s)
	if convErr != nil {
		return fallback, nil
	}
	return n, nil
}
