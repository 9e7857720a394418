package confluence

// spaceResponse carries the only field the client needs from the space
// resource: the expandable homepage link holding the home page ID.
type spaceResponse struct {
	Expandable struct {
		Homepage string `json:"homepage"`
	} `json:"_expandable"`
}

type searchResponse struct {
	Results []contentRef `json:"results"`
}

type contentRef struct {
	ID string `json:"id"`
}

// ancestorsResponse lists a page's ancestors root first; the last entry is
// the immediate parent.
type ancestorsResponse struct {
	Ancestors []contentRef `json:"ancestors"`
}

type pageRequest struct {
	Type      string        `json:"type"`
	Title     string        `json:"title"`
	Space     spaceRef      `json:"space"`
	Body      pageBody      `json:"body"`
	Ancestors []ancestorRef `json:"ancestors"`
}

type spaceRef struct {
	Key string `json:"key"`
}

type pageBody struct {
	Storage storageBody `json:"storage"`
}

type storageBody struct {
	Value          string `json:"value"`
	Representation string `json:"representation"`
}

type ancestorRef struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

type pageResponse struct {
	ID    string `json:"id"`
	Space struct {
		Name string `json:"name"`
	} `json:"space"`
	Links struct {
		WebUI string `json:"webui"`
	} `json:"_links"`
}
