// Package interchange implements the XML import/export format for
// moving lists and tasks between installations.
package interchange

import (
	"encoding/xml"
	"fmt"
	"math"

	"timetally/internal/domain"
)

type document struct {
	XMLName xml.Name   `xml:"timetally"`
	Lists   []listElem `xml:"list"`
}

type listElem struct {
	Name  string     `xml:"name,attr"`
	Tasks []taskElem `xml:"task"`
}

// taskElem uses pointer attributes for the optional fields so that an
// absent attribute is distinguishable from an explicit zero.
type taskElem struct {
	Name      string   `xml:"name,attr"`
	Time      int      `xml:"time,attr"`
	Remaining *float64 `xml:"remaining,attr,omitempty"`
	Enabled   *int     `xml:"enabled,attr,omitempty"`
	MediaID   string   `xml:"mediaId,attr,omitempty"`
	MediaURL  string   `xml:"mediaUrl,attr,omitempty"`
}

// Export serializes the state into the interchange document. Lists
// follow listOrder; remaining times are rounded to whole seconds.
func Export(st *domain.State) ([]byte, error) {
	doc := document{}
	for _, name := range st.ListOrder {
		list, ok := st.Lists[name]
		if !ok {
			continue
		}
		elem := listElem{Name: name}
		for _, task := range list.Tasks {
			remaining := math.Round(task.Remaining)
			enabled := 0
			if task.Enabled {
				enabled = 1
			}
			te := taskElem{
				Name:      task.Name,
				Time:      task.Duration,
				Remaining: &remaining,
				Enabled:   &enabled,
			}
			if task.Media != nil {
				te.MediaID = task.Media.ID
				te.MediaURL = task.Media.SourceURL
			}
			elem.Tasks = append(elem.Tasks, te)
		}
		doc.Lists = append(doc.Lists, elem)
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal interchange document: %w", err)
	}
	return append([]byte(xml.Header), append(out, '\n')...), nil
}

// Import merges the document into the state. New lists are appended to
// listOrder with a default config; tasks in existing lists are
// appended after the current ones. A document without any <list>
// elements is rejected with ErrMalformedImport and the state is left
// untouched.
func Import(st *domain.State, data []byte) error {
	var doc document
	if err := xml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMalformedImport, err)
	}
	if len(doc.Lists) == 0 {
		return domain.ErrMalformedImport
	}

	for _, elem := range doc.Lists {
		if elem.Name == "" {
			continue
		}
		list, ok := st.Lists[elem.Name]
		if !ok {
			list = &domain.TaskList{Name: elem.Name, Config: domain.DefaultListConfig()}
			st.Lists[elem.Name] = list
			st.ListOrder = append(st.ListOrder, elem.Name)
		}
		for _, te := range elem.Tasks {
			list.Tasks = append(list.Tasks, importTask(te))
		}
	}
	return nil
}

func importTask(te taskElem) domain.Task {
	task := domain.Task{
		Name:     te.Name,
		Duration: te.Time,
		Enabled:  te.Enabled == nil || *te.Enabled != 0,
	}
	if te.Remaining != nil && *te.Remaining > 0 {
		task.Remaining = *te.Remaining
	} else {
		task.Remaining = float64(te.Time)
	}
	if te.MediaID != "" {
		task.Media = &domain.MediaRef{ID: te.MediaID, SourceURL: te.MediaURL}
	} else {
		task.Media = domain.InferMedia(te.Name)
	}
	return task
}
