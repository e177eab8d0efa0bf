package domain

import "testing"

func TestFacets_FilesOnly(t *testing.T) {
	idx := &Index{
		Folders: []FolderEntry{
			{FolderMetadata: FolderMetadata{Name: "A", Category: "docs", Tags: []string{"folder-tag"}}, Path: "A"},
		},
		Files: []FileEntry{
			{FileMetadata: FileMetadata{Filename: "report.txt", Tags: []string{"x"}, FileType: FileTypeTxt, Author: "Avery"}, Path: "A"},
		},
	}

	fc := Facets(idx)

	if fc.Tags["x"] != 1 {
		t.Errorf("expected tags[x]=1, got %d", fc.Tags["x"])
	}
	if _, ok := fc.Tags["folder-tag"]; ok {
		t.Error("folder tags must not contribute to facets")
	}
	if _, ok := fc.Categories["docs"]; ok {
		t.Error("folder categories must not contribute to facets")
	}
	if fc.FileTypes["txt"] != 1 {
		t.Errorf("expected fileTypes[txt]=1, got %d", fc.FileTypes["txt"])
	}
	if fc.Authors["Avery"] != 1 {
		t.Errorf("expected authors[Avery]=1, got %d", fc.Authors["Avery"])
	}
}

func TestFacets_MultiValuedTags(t *testing.T) {
	idx := &Index{
		Files: []FileEntry{
			{FileMetadata: FileMetadata{Filename: "a", Tags: []string{"x", "y"}, Category: "docs", FileType: FileTypePDF, Author: "A"}},
			{FileMetadata: FileMetadata{Filename: "b", Tags: []string{"y"}, Category: "docs", FileType: FileTypePDF, Author: "B"}},
		},
	}

	fc := Facets(idx)

	if fc.Tags["x"] != 1 || fc.Tags["y"] != 2 {
		t.Errorf("tag counts wrong: %v", fc.Tags)
	}
	if fc.Categories["docs"] != 2 {
		t.Errorf("expected categories[docs]=2, got %d", fc.Categories["docs"])
	}
	if fc.FileTypes["pdf"] != 2 {
		t.Errorf("expected fileTypes[pdf]=2, got %d", fc.FileTypes["pdf"])
	}
}

func TestFacets_MissingFieldsBucketAsUnknown(t *testing.T) {
	idx := &Index{
		Files: []FileEntry{
			{FileMetadata: FileMetadata{Filename: "bare.bin"}},
		},
	}

	fc := Facets(idx)

	if fc.Categories[UnknownBucket] != 1 {
		t.Errorf("expected categories[unknown]=1, got %v", fc.Categories)
	}
	if fc.FileTypes[UnknownBucket] != 1 {
		t.Errorf("expected fileTypes[unknown]=1, got %v", fc.FileTypes)
	}
	if fc.Authors[UnknownBucket] != 1 {
		t.Errorf("expected authors[unknown]=1, got %v", fc.Authors)
	}
	if len(fc.Tags) != 0 {
		t.Errorf("no tags expected, got %v", fc.Tags)
	}
}

func TestFacets_EmptyIndex(t *testing.T) {
	fc := Facets(&Index{})
	if len(fc.Categories)+len(fc.Tags)+len(fc.FileTypes)+len(fc.Authors) != 0 {
		t.Error("empty index yields empty facet maps")
	}
	if fc.Categories == nil || fc.Tags == nil || fc.FileTypes == nil || fc.Authors == nil {
		t.Error("facet maps must be allocated for JSON encoding")
	}
}
