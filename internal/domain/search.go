package domain

import "strings"

// Search evaluates criteria against every indexed record and returns the
// matches in index order. The index is never modified.
func Search(idx *Index, c Criteria) Results {
	res := Results{Folders: []FolderEntry{}, Files: []FileEntry{}}
	if idx == nil {
		return res
	}
	if c.Folders {
		for _, e := range idx.Folders {
			if matchesFolder(e, c) {
				res.Folders = append(res.Folders, e)
			}
		}
	}
	if c.Files {
		for _, e := range idx.Files {
			if matchesFile(e, c) {
				res.Files = append(res.Files, e)
			}
		}
	}
	return res
}

// searchable is the field view the matching predicate runs over. Folders
// contribute name, files contribute title; both may carry a subject.
type searchable struct {
	name        string
	title       string
	description string
	subject     string
	keywords    []string
	tags        []string
	category    string
	author      string
	fileType    string
	updated     string
	created     string
}

func matchesFolder(e FolderEntry, c Criteria) bool {
	return matches(searchable{
		name:        e.Name,
		description: e.Description,
		subject:     e.Subject,
		keywords:    e.Keywords,
		tags:        e.Tags,
		category:    e.Category,
		author:      e.Author,
		updated:     e.Updated,
		created:     e.Created,
	}, c, false)
}

func matchesFile(e FileEntry, c Criteria) bool {
	return matches(searchable{
		title:       e.Title,
		description: e.Description,
		subject:     e.Subject,
		keywords:    e.Keywords,
		tags:        e.Tags,
		category:    e.Category,
		author:      e.Author,
		fileType:    string(e.FileType),
		updated:     e.Updated,
		created:     e.Created,
	}, c, true)
}

// matches evaluates the clause conjunction. The file-type clause only
// applies to file records; callers gate folder and file partitions
// independently through the criteria.
func matches(s searchable, c Criteria, isFile bool) bool {
	if c.Query != "" {
		hay := strings.ToLower(strings.Join([]string{
			s.name,
			s.title,
			s.description,
			s.subject,
			strings.Join(s.keywords, " "),
			strings.Join(s.tags, " "),
		}, " "))
		if !strings.Contains(hay, strings.ToLower(c.Query)) {
			return false
		}
	}

	if len(c.Tags) > 0 && !intersects(s.tags, c.Tags) {
		return false
	}

	if c.Category != "" && s.category != c.Category {
		return false
	}

	if isFile && c.FileType != "" && s.fileType != c.FileType {
		return false
	}

	if c.Author != "" && !strings.Contains(strings.ToLower(s.author), strings.ToLower(c.Author)) {
		return false
	}

	if c.DateFrom != "" || c.DateTo != "" {
		// ISO-8601 strings compare lexicographically in date order. A
		// record with no timestamps passes the clause.
		date := s.updated
		if date == "" {
			date = s.created
		}
		if date != "" {
			if c.DateFrom != "" && date < c.DateFrom {
				return false
			}
			if c.DateTo != "" && date > c.DateTo {
				return false
			}
		}
	}

	return true
}

// intersects reports whether any wanted tag is present in have.
// Comparison is exact and case-sensitive.
func intersects(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}
