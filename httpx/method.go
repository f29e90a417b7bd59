package httpx

// Method is a request method token. The four constants below are the
// known methods; any other token is kept verbatim and reports
// Known() == false.
type Method string

const (
	MethodGet    Method = "GET"
	MethodPost   Method = "POST"
	MethodPut    Method = "PUT"
	MethodDelete Method = "DELETE"
)

func (m Method) String() string { return string(m) }

// Known reports whether m is one of GET, POST, PUT or DELETE.
func (m Method) Known() bool {
	switch m {
	case MethodGet, MethodPost, MethodPut, MethodDelete:
		return true
	}
	return false
}

func (m Method) IsGet() bool    { return m == MethodGet }
func (m Method) IsPost() bool   { return m == MethodPost }
func (m Method) IsPut() bool    { return m == MethodPut }
func (m Method) IsDelete() bool { return m == MethodDelete }
