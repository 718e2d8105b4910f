package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// NotSpecified labels records with no value for a statistics bucket.
const NotSpecified = "not specified"

// Placeholder is displayed for absent text fields and dates.
const Placeholder = "-"

// Text is a vendor text field. The dataset encodes some fields as strings in one
// export and as numbers in another, so both are accepted. null decodes to "".
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*t = Text(n.String())
		return nil
	}
	var b bool
	if err := json.Unmarshal(data, &b); err != nil {
		return err
	}
	*t = Text(strconv.FormatBool(b))
	return nil
}

func (t Text) String() string {
	return strings.TrimSpace(string(t))
}

// Or returns the trimmed value, or fallback when it is empty.
func (t Text) Or(fallback string) string {
	if s := t.String(); s != "" {
		return s
	}
	return fallback
}

// JobRecord is one posting as published in the dataset.
type JobRecord struct {
	RequestID      Text `json:"RequestId"`
	TenderNumber   Text `json:"TenderNumber"`
	TenderName     Text `json:"TenderName"`
	OfficeName     Text `json:"OfficeName"`
	OfficeNumber   Text `json:"OfficeNumber"`
	OfficeUnitName Text `json:"OfficeUnitName"`
	LocationName   Text `json:"LocationName"`
	Area           Text `json:"Area"`
	PublishType    Text `json:"PublishmenTypeName"`
	JobRatingName  Text `json:"JobRatingName"`
	RankFrom       Text `json:"RankFrom"`
	RankTo         Text `json:"RankTo"`
	NumberOfJobs   Text `json:"NumberOfJobs"`
	PublishDateRaw Text `json:"TenderPublicationDate"`
	LastDateRaw    Text `json:"LastSubmittingDate"`
	Requirements   Text `json:"JobRequirements"`
	Remarks        Text `json:"JobRemarks"`
}

// ID returns the record identifier.
func (j JobRecord) ID() string {
	return j.RequestID.String()
}
