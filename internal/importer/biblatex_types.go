package importer

import "github.com/matsen/bibconv/internal/reftype"

// biblatexTypes maps biblatex entry types to the common schema.
var biblatexTypes = &reftype.Table{
	Format: "biblatex",
	Variants: []reftype.Variant{
		{Name: "article", Lookups: blArticle},
		{Name: "booklet", Lookups: blBooklet},
		{Name: "book", Lookups: blBook},
		{Name: "collection", Lookups: blCollection},
		{Name: "inbook", Lookups: blInbook},
		{Name: "incollection", Lookups: blIncollection},
		{Name: "inproceedings", Lookups: blInproceedings},
		{Name: "conference", Lookups: blInproceedings},
		{Name: "manual", Lookups: blManual},
		{Name: "misc", Lookups: blMisc},
		{Name: "online", Lookups: blOnline},
		{Name: "electronic", Lookups: blOnline},
		{Name: "www", Lookups: blOnline},
		{Name: "patent", Lookups: blPatent},
		{Name: "periodical", Lookups: blPeriodical},
		{Name: "proceedings", Lookups: blProceedings},
		{Name: "report", Lookups: blReport},
		{Name: "techreport", Lookups: blReport},
		{Name: "thesis", Lookups: blThesis},
		{Name: "phdthesis", Lookups: blPhdthesis},
		{Name: "mastersthesis", Lookups: blMastersthesis},
		{Name: "unpublished", Lookups: blUnpublished},
	},
	Default: 9,
}

var blArticle = []reftype.Lookup{
	lookup("author", "AUTHOR", reftype.Person, lvMain),
	lookup("editor", "EDITOR", reftype.Person, lvMain),
	lookup("redactor", "REDACTOR", reftype.Person, lvMain),
	lookup("annotator", "ANNOTATOR", reftype.Person, lvMain),
	lookup("commentator", "COMMENTATOR", reftype.Person, lvMain),
	lookup("translator", "TRANSLATOR", reftype.Person, lvMain),
	lookup("title", "TITLE", reftype.Title, lvMain),
	lookup("subtitle", "SUBTITLE", reftype.Copy, lvMain),
	lookup("titleaddon", "TITLEADDON", reftype.Copy, lvMain),
	lookup("journal", "TITLE", reftype.Title, lvHost),
	lookup("journaltitle", "TITLE", reftype.Title, lvHost),
	lookup("journalsubtitle", "SUBTITLE", reftype.Copy, lvHost),
	lookup("shortjournal", "SHORTTITLE", reftype.Copy, lvHost),
	lookup("issuetitle", "TITLE", reftype.Title, lvSeries),
	lookup("issuesubtitle", "SUBTITLE", reftype.Copy, lvSeries),
	lookup("language", "LANGUAGE", reftype.Copy, lvMain),
	lookup("origlanguage", "LANGUAGE", reftype.Copy, lvOrig),
	lookup("origyear", "YEAR", reftype.Copy, lvOrig),
	lookup("origtitle", "TITLE", reftype.Title, lvOrig),
	lookup("origlocation", "LOCATION", reftype.Copy, lvOrig),
	lookup("origpublisher", "PUBLISHER", reftype.Copy, lvOrig),
	lookup("series", "TITLE", reftype.Title, lvSeries),
	lookup("volume", "VOLUME", reftype.Copy, lvMain),
	lookup("number", "NUMBER", reftype.Copy, lvMain),
	lookup("eid", "EID", reftype.Copy, lvMain),
	lookup("issue", "ISSUE", reftype.Copy, lvMain),
	lookup("date", "DATE", reftype.Copy, lvMain),
	lookup("day", "PARTDAY", reftype.Copy, lvMain),
	lookup("month", "PARTMONTH", reftype.Copy, lvMain),
	lookup("year", "PARTYEAR", reftype.Copy, lvMain),
	lookup("pages", "PAGES", reftype.Pages, lvMain),
	lookup("version", "VERSION", reftype.Copy, lvMain),
	lookup("note", "NOTES", reftype.Copy, lvMain),
	lookup("annote", "NOTES", reftype.Copy, lvMain),
	lookup("annotation", "NOTES", reftype.Copy, lvMain),
	lookup("issn", "ISSN", reftype.SerialNo, lvHost),
	lookup("abstract", "ABSTRACT", reftype.Copy, lvMain),
	lookup("addendum", "ADDENDUM", reftype.Copy, lvMain),
	lookup("doi", "DOI", reftype.Copy, lvMain),
	lookup("eprint", "", reftype.Eprint, lvMain),
	lookup("eprinttype", "", reftype.Eprint, lvMain),
	lookup("url", "", reftype.URL, lvMain),
	lookup("urldate", "URLDATE", reftype.Copy, lvMain),
	lookup("urlday", "URLDAY", reftype.Copy, lvMain),
	lookup("urlmonth", "URLMONTH", reftype.Copy, lvMain),
	lookup("urlyear", "URLYEAR", reftype.Copy, lvMain),
	lookup("address", "ADDRESS", reftype.Copy, lvMain),
	lookup("refnum", "REFNUM", reftype.Copy, lvMain),
	always("INTERNAL_TYPE", "ARTICLE", lvMain),
	always("ISSUANCE", "continuing", lvHost),
	always("RESOURCE", "text", lvMain),
	always("GENRE", "journal article", lvMain),
	always("GENRE", "periodical", lvHost),
	lookup("keywords", "KEYWORD", reftype.Keyword, lvMain),
	lookup("file", "FILEATTACH", reftype.LinkedFile, lvMain),
}

var blBook = []reftype.Lookup{
	lookup("author", "AUTHOR", reftype.Person, lvMain),
	lookup("editor", "EDITOR", reftype.Person, lvMain),
	lookup("redactor", "REDACTOR", reftype.Person, lvMain),
	lookup("annotator", "ANNOTATOR", reftype.Person, lvMain),
	lookup("commentator", "COMMENTATOR", reftype.Person, lvMain),
	lookup("translator", "TRANSLATOR", reftype.Person, lvMain),
	lookup("introduction", "INTRODUCTION", reftype.Copy, lvMain),
	lookup("foreward", "FOREWARD", reftype.Copy, lvMain),
	lookup("afterward", "AFTERWARD", reftype.Copy, lvMain),
	lookup("title", "TITLE", reftype.Title, lvMain),
	lookup("subtitle", "SUBTITLE", reftype.Copy, lvMain),
	lookup("titleaddon", "TITLEADDON", reftype.Copy, lvMain),
	lookup("maintitle", "TITLE", reftype.Title, lvHost),
	lookup("mainsubtitle", "SUBTITLE", reftype.Copy, lvHost),
	lookup("maintitleaddon", "MAINTITLEADDON", reftype.Copy, lvHost),
	lookup("language", "LANGUAGE", reftype.Copy, lvMain),
	lookup("year", "YEAR", reftype.Copy, lvMain),
	lookup("origlanguage", "LANGUAGE", reftype.Copy, lvOrig),
	lookup("origyear", "YEAR", reftype.Copy, lvOrig),
	lookup("origtitle", "TITLE", reftype.Title, lvOrig),
	lookup("origlocation", "LOCATION", reftype.Copy, lvOrig),
	lookup("origpublisher", "PUBLISHER", reftype.Copy, lvOrig),
	lookup("volume", "VOLUME", reftype.Copy, lvHost),
	lookup("part", "PART", reftype.Copy, lvHost),
	lookup("edition", "EDITION", reftype.Copy, lvMain),
	lookup("volumes", "NUMVOLUMES", reftype.Copy, lvHost),
	lookup("series", "TITLE", reftype.Title, lvHost),
	lookup("number", "NUMBER", reftype.Copy, lvMain),
	lookup("note", "NOTES", reftype.Copy, lvMain),
	lookup("annote", "NOTES", reftype.Copy, lvMain),
	lookup("annotation", "NOTES", reftype.Copy, lvMain),
	lookup("publisher", "PUBLISHER", reftype.Copy, lvMain),
	lookup("location", "LOCATION", reftype.Copy, lvMain),
	lookup("isbn", "ISBN", reftype.SerialNo, lvMain),
	lookup("chapter", "CHAPTER", reftype.Copy, lvMain),
	lookup("pages", "", reftype.Pages, lvMain),
	lookup("pagetotal", "TOTALPAGES", reftype.Copy, lvMain),
	lookup("addendum", "ADDENDUM", reftype.Copy, lvMain),
	lookup("doi", "DOI", reftype.Copy, lvMain),
	lookup("eprint", "", reftype.Eprint, lvMain),
	lookup("eprinttype", "", reftype.Eprint, lvMain),
	lookup("url", "", reftype.URL, lvMain),
	lookup("urldate", "URLDATE", reftype.Copy, lvMain),
	lookup("urlday", "URLDAY", reftype.Copy, lvMain),
	lookup("urlmonth", "URLMONTH", reftype.Copy, lvMain),
	lookup("urlyear", "URLYEAR", reftype.Copy, lvMain),
	lookup("address", "ADDRESS", reftype.Copy, lvMain),
	lookup("refnum", "REFNUM", reftype.Copy, lvMain),
	always("INTERNAL_TYPE", "BOOK", lvMain),
	always("RESOURCE", "text", lvMain),
	always("ISSUANCE", "monographic", lvMain),
	always("GENRE", "book", lvMain),
	lookup("keywords", "KEYWORD", reftype.Keyword, lvMain),
	lookup("file", "FILEATTACH", reftype.LinkedFile, lvMain),
}

var blBooklet = []reftype.Lookup{
	lookup("author", "AUTHOR", reftype.Person, lvMain),
	lookup("editor", "EDITOR", reftype.Person, lvMain),
	lookup("title", "TITLE", reftype.Title, lvMain),
	lookup("subtitle", "SUBTITLE", reftype.Copy, lvMain),
	lookup("titleaddon", "TITLEADDON", reftype.Copy, lvMain),
	lookup("howpublished", "", reftype.HowPublished, lvMain),
	lookup("year", "YEAR", reftype.Copy, lvMain),
	lookup("language", "LANGUAGE", reftype.Copy, lvMain),
	lookup("type", "GENRE", reftype.Genre, lvMain),
	lookup("note", "NOTES", reftype.Copy, lvMain),
	lookup("annote", "NOTES", reftype.Copy, lvMain),
	lookup("annotation", "NOTES", reftype.Copy, lvMain),
	lookup("publisher", "PUBLISHER", reftype.Copy, lvMain),
	lookup("location", "LOCATION", reftype.Copy, lvMain),
	lookup("chapter", "CHAPTER", reftype.Copy, lvMain),
	lookup("pages", "", reftype.Pages, lvMain),
	lookup("pagetotal", "TOTALPAGES", reftype.Copy, lvMain),
	lookup("addendum", "ADDENDUM", reftype.Copy, lvMain),
	lookup("doi", "DOI", reftype.Copy, lvMain),
	lookup("eprint", "", reftype.Eprint, lvMain),
	lookup("eprinttype", "", reftype.Eprint, lvMain),
	lookup("url", "", reftype.URL, lvMain),
	lookup("urldate", "URLDATE", reftype.Copy, lvMain),
	lookup("urlday", "URLDAY", reftype.Copy, lvMain),
	lookup("urlmonth", "URLMONTH", reftype.Copy, lvMain),
	lookup("urlyear", "URLYEAR", reftype.Copy, lvMain),
	lookup("address", "ADDRESS", reftype.Copy, lvMain),
	lookup("refnum", "REFNUM", reftype.Copy, lvMain),
	always("INTERNAL_TYPE", "BOOK", lvMain),
	always("RESOURCE", "text", lvMain),
	always("ISSUANCE", "monographic", lvMain),
	always("GENRE", "book", lvMain),
	lookup("keywords", "KEYWORD", reftype.Keyword, lvMain),
	lookup("file", "FILEATTACH", reftype.LinkedFile, lvMain),
}

var blCollection = []reftype.Lookup{
	lookup("editor", "EDITOR", reftype.Person, lvMain),
	lookup("redactor", "REDACTOR", reftype.Person, lvMain),
	lookup("annotator", "ANNOTATOR", reftype.Person, lvMain),
	lookup("commentator", "COMMENTATOR", reftype.Person, lvMain),
	lookup("translator", "TRANSLATOR", reftype.Person, lvMain),
	lookup("year", "YEAR", reftype.Copy, lvMain),
	lookup("introduction", "INTRODUCTION", reftype.Copy, lvMain),
	lookup("foreward", "FOREWARD", reftype.Copy, lvMain),
	lookup("afterward", "AFTERWARD", reftype.Copy, lvMain),
	lookup("title", "TITLE", reftype.Title, lvMain),
	lookup("subtitle", "SUBTITLE", reftype.Copy, lvMain),
	lookup("titleaddon", "TITLEADDON", reftype.Copy, lvMain),
	lookup("maintitle", "TITLE", reftype.Title, lvHost),
	lookup("mainsubtitle", "SUBTITLE", reftype.Copy, lvHost),
	lookup("maintitleaddon", "MAINTITLEADDON", reftype.Copy, lvHost),
	lookup("language", "LANGUAGE", reftype.Copy, lvMain),
	lookup("origlanguage", "LANGUAGE", reftype.Copy, lvOrig),
	lookup("origyear", "YEAR", reftype.Copy, lvOrig),
	lookup("origtitle", "TITLE", reftype.Title, lvOrig),
	lookup("origlocation", "LOCATION", reftype.Copy, lvOrig),
	lookup("origpublisher", "PUBLISHER", reftype.Copy, lvOrig),
	lookup("volume", "VOLUME", reftype.Copy, lvHost),
	lookup("part", "PART", reftype.Copy, lvHost),
	lookup("edition", "EDITION", reftype.Copy, lvMain),
	lookup("volumes", "NUMVOLUMES", reftype.Copy, lvHost),
	lookup("series", "TITLE", reftype.Title, lvSeries),
	lookup("number", "NUMBER", reftype.Copy, lvMain),
	lookup("note", "NOTES", reftype.Copy, lvMain),
	lookup("annote", "NOTES", reftype.Copy, lvMain),
	lookup("annotation", "NOTES", reftype.Copy, lvMain),
	lookup("publisher", "PUBLISHER", reftype.Copy, lvMain),
	lookup("location", "LOCATION", reftype.Copy, lvMain),
	lookup("isbn", "ISBN", reftype.SerialNo, lvMain),
	lookup("chapter", "CHAPTER", reftype.Copy, lvMain),
	lookup("pages", "", reftype.Pages, lvMain),
	lookup("pagetotal", "TOTALPAGES", reftype.Copy, lvMain),
	lookup("addendum", "ADDENDUM", reftype.Copy, lvMain),
	lookup("doi", "DOI", reftype.Copy, lvMain),
	lookup("eprint", "", reftype.Eprint, lvMain),
	lookup("eprinttype", "", reftype.Eprint, lvMain),
	lookup("url", "", reftype.URL, lvMain),
	lookup("urldate", "URLDATE", reftype.Copy, lvMain),
	lookup("urlday", "URLDAY", reftype.Copy, lvMain),
	lookup("urlmonth", "URLMONTH", reftype.Copy, lvMain),
	lookup("urlyear", "URLYEAR", reftype.Copy, lvMain),
	lookup("address", "ADDRESS", reftype.Copy, lvMain),
	lookup("refnum", "REFNUM", reftype.Copy, lvMain),
	always("INTERNAL_TYPE", "BOOK", lvMain),
	always("RESOURCE", "text", lvMain),
	always("ISSUANCE", "monographic", lvMain),
	always("GENRE", "book", lvMain),
	lookup("keywords", "KEYWORD", reftype.Keyword, lvMain),
	lookup("file", "FILEATTACH", reftype.LinkedFile, lvMain),
}

var blInbook = []reftype.Lookup{
	lookup("author", "AUTHOR", reftype.Person, lvMain),
	lookup("editor", "EDITOR", reftype.Person, lvHost),
	lookup("redactor", "REDACTOR", reftype.Person, lvHost),
	lookup("annotator", "ANNOTATOR", reftype.Person, lvHost),
	lookup("commentator", "COMMENTATOR", reftype.Person, lvHost),
	lookup("translator", "TRANSLATOR", reftype.Person, lvHost),
	lookup("year", "YEAR", reftype.Copy, lvMain),
	lookup("introduction", "INTRODUCTION", reftype.Copy, lvHost),
	lookup("foreward", "FOREWARD", reftype.Copy, lvHost),
	lookup("afterward", "AFTERWARD", reftype.Copy, lvHost),
	lookup("title", "TITLE", reftype.Title, lvMain),
	lookup("subtitle", "SUBTITLE", reftype.Copy, lvMain),
	lookup("titleaddon", "TITLEADDON", reftype.Copy, lvMain),
	lookup("maintitle", "TITLE", reftype.Title, lvMain),
	lookup("mainsubtitle", "SUBTITLE", reftype.Copy, lvMain),
	lookup("maintitleaddon", "MAINTITLEADDON", reftype.Copy, lvMain),
	lookup("booktitle", "TITLE", reftype.Title, lvHost),
	lookup("booksubtitle", "SUBTITLE", reftype.Copy, lvHost),
	lookup("booktitleaddon", "BOOKTITLEADDON", reftype.Copy, lvHost),
	lookup("bookauthor", "AUTHOR", reftype.Person, lvHost),
	lookup("language", "LANGUAGE", reftype.Copy, lvMain),
	lookup("origlanguage", "LANGUAGE", reftype.Copy, lvOrig),
	lookup("origyear", "YEAR", reftype.Copy, lvOrig),
	lookup("origtitle", "TITLE", reftype.Title, lvOrig),
	lookup("origlocation", "LOCATION", reftype.Copy, lvOrig),
	lookup("origpublisher", "PUBLISHER", reftype.Copy, lvOrig),
	lookup("volume", "VOLUME", reftype.Copy, lvMain),
	lookup("pages", "PAGES", reftype.Pages, lvMain),
	lookup("part", "PART", reftype.Copy, lvHost),
	lookup("edition", "EDITION", reftype.Copy, lvMain),
	lookup("volumes", "NUMVOLUMES", reftype.Copy, lvHost),
	lookup("series", "TITLE", reftype.Title, lvSeries),
	lookup("number", "NUMBER", reftype.Copy, lvMain),
	lookup("note", "NOTES", reftype.Copy, lvMain),
	lookup("annote", "NOTES", reftype.Copy, lvMain),
	lookup("annotation", "NOTES", reftype.Copy, lvMain),
	lookup("publisher", "PUBLISHER", reftype.Copy, lvMain),
	lookup("location", "LOCATION", reftype.Copy, lvMain),
	lookup("isbn", "ISBN", reftype.SerialNo, lvHost),
	lookup("chapter", "CHAPTER", reftype.Copy, lvMain),
	lookup("addendum", "ADDENDUM", reftype.Copy, lvMain),
	lookup("doi", "DOI", reftype.Copy, lvMain),
	lookup("eprint", "", reftype.Eprint, lvMain),
	lookup("eprinttype", "", reftype.Eprint, lvMain),
	lookup("url", "", reftype.URL, lvMain),
	lookup("urldate", "URLDATE", reftype.Copy, lvMain),
	lookup("urlday", "URLDAY", reftype.Copy, lvMain),
	lookup("urlmonth", "URLMONTH", reftype.Copy, lvMain),
	lookup("urlyear", "URLYEAR", reftype.Copy, lvMain),
	lookup("address", "ADDRESS", reftype.Copy, lvMain),
	lookup("refnum", "REFNUM", reftype.Copy, lvMain),
	always("INTERNAL_TYPE", "INBOOK", lvMain),
	always("RESOURCE", "text", lvMain),
	always("ISSUANCE", "monographic", lvHost),
	always("GENRE", "book chapter", lvMain),
	always("GENRE", "book", lvHost),
	lookup("keywords", "KEYWORD", reftype.Keyword, lvMain),
	lookup("file", "FILEATTACH", reftype.LinkedFile, lvMain),
}

var blIncollection = []reftype.Lookup{
	lookup("author", "AUTHOR", reftype.Person, lvMain),
	lookup("year", "YEAR", reftype.Copy, lvMain),
	lookup("title", "TITLE", reftype.Title, lvMain),
	lookup("subtitle", "SUBTITLE", reftype.Copy, lvMain),
	lookup("titleaddon", "TITLEADDON", reftype.Copy, lvMain),
	lookup("language", "LANGUAGE", reftype.Copy, lvMain),
	lookup("edition", "EDITION", reftype.Copy, lvMain),
	lookup("number", "NUMBER", reftype.Copy, lvMain),
	lookup("note", "NOTES", reftype.Copy, lvMain),
	lookup("annote", "NOTES", reftype.Copy, lvMain),
	lookup("annotation", "NOTES", reftype.Copy, lvMain),
	lookup("introduction", "INTRODUCTION", reftype.Copy, lvHost),
	lookup("foreward", "FOREWARD", reftype.Copy, lvHost),
	lookup("afterward", "AFTERWARD", reftype.Copy, lvHost),
	lookup("bookauthor", "AUTHOR", reftype.Person, lvHost),
	lookup("booktitle", "TITLE", reftype.Title, lvHost),
	lookup("booksubtitle", "SUBTITLE", reftype.Copy, lvHost),
	lookup("booktitleaddon", "BOOKTITLEADDON", reftype.Copy, lvHost),
	lookup("editor", "EDITOR", reftype.Person, lvHost),
	lookup("redactor", "REDACTOR", reftype.Person, lvHost),
	lookup("annotator", "ANNOTATOR", reftype.Person, lvHost),
	lookup("commentator", "COMMENTATOR", reftype.Person, lvHost),
	lookup("translator", "TRANSLATOR", reftype.Person, lvHost),
	lookup("volume", "VOLUME", reftype.Copy, lvHost),
	lookup("part", "PART", reftype.Copy, lvHost),
	lookup("volumes", "NUMVOLUMES", reftype.Copy, lvHost),
	lookup("maintitle", "TITLE", reftype.Title, lvHost + 1),
	lookup("mainsubtitle", "SUBTITLE", reftype.Copy, lvHost + 1),
	lookup("maintitleaddon", "MAINTITLEADDON", reftype.Copy, lvHost + 1),
	lookup("series", "TITLE", reftype.Title, lvHost + 2),
	lookup("origlanguage", "LANGUAGE", reftype.Copy, lvOrig),
	lookup("origyear", "YEAR", reftype.Copy, lvOrig),
	lookup("origtitle", "TITLE", reftype.Title, lvOrig),
	lookup("origlocation", "LOCATION", reftype.Copy, lvOrig),
	lookup("origpublisher", "PUBLISHER", reftype.Copy, lvOrig),
	lookup("publisher", "PUBLISHER", reftype.Copy, lvHost),
	lookup("location", "LOCATION", reftype.Copy, lvHost),
	lookup("isbn", "ISBN", reftype.SerialNo, lvMain),
	lookup("chapter", "CHAPTER", reftype.Copy, lvMain),
	lookup("pages", "PAGES", reftype.Pages, lvMain),
	lookup("addendum", "ADDENDUM", reftype.Copy, lvMain),
	lookup("doi", "DOI", reftype.Copy, lvMain),
	lookup("eprint", "", reftype.Eprint, lvMain),
	lookup("eprinttype", "", reftype.Eprint, lvMain),
	lookup("url", "", reftype.URL, lvMain),
	lookup("urldate", "URLDATE", reftype.Copy, lvMain),
	lookup("urlday", "URLDAY", reftype.Copy, lvMain),
	lookup("urlmonth", "URLMONTH", reftype.Copy, lvMain),
	lookup("urlyear", "URLYEAR", reftype.Copy, lvMain),
	lookup("address", "ADDRESS", reftype.Copy, lvMain),
	lookup("refnum", "REFNUM", reftype.Copy, lvMain),
	always("INTERNAL_TYPE", "INCOLLECTION", lvMain),
	always("RESOURCE", "text", lvMain),
	always("ISSUANCE", "monographic", lvMain),
	always("GENRE", "collection", lvHost),
	lookup("keywords", "KEYWORD", reftype.Keyword, lvMain),
	lookup("file", "FILEATTACH", reftype.LinkedFile, lvMain),
}

var blInproceedings = []reftype.Lookup{
	lookup("author", "AUTHOR", reftype.Person, lvMain),
	lookup("editor", "EDITOR", reftype.Person, lvHost),
	lookup("redactor", "REDACTOR", reftype.Person, lvHost),
	lookup("annotator", "ANNOTATOR", reftype.Person, lvHost),
	lookup("commentator", "COMMENTATOR", reftype.Person, lvHost),
	lookup("translator", "TRANSLATOR", reftype.Person, lvHost),
	lookup("eventtitle", "EVENT:CONF", reftype.Copy, lvMain),
	lookup("year", "YEAR", reftype.Copy, lvMain),
	lookup("introduction", "INTRODUCTION", reftype.Copy, lvHost),
	lookup("foreward", "FOREWARD", reftype.Copy, lvHost),
	lookup("afterward", "AFTERWARD", reftype.Copy, lvHost),
	lookup("title", "TITLE", reftype.Title, lvMain),
	lookup("subtitle", "SUBTITLE", reftype.Copy, lvMain),
	lookup("titleaddon", "TITLEADDON", reftype.Copy, lvMain),
	lookup("booktitle", "TITLE", reftype.Title, lvHost),
	lookup("booksubtitle", "SUBTITLE", reftype.Copy, lvHost),
	lookup("booktitleaddon", "BOOKTITLEADDON", reftype.Copy, lvHost),
	lookup("maintitle", "TITLE", reftype.Title, lvHost + 1),
	lookup("mainsubtitle", "SUBTITLE", reftype.Copy, lvHost + 1),
	lookup("maintitleaddon", "MAINTITLEADDON", reftype.Copy, lvHost + 1),
	lookup("series", "TITLE", reftype.Title, lvHost + 2),
	lookup("venue", "ADDRESS", reftype.Copy, lvMain),
	lookup("organization", "ORGANIZER:CORP", reftype.Copy, lvMain),
	lookup("language", "LANGUAGE", reftype.Copy, lvMain),
	lookup("origlanguage", "LANGUAGE", reftype.Copy, lvOrig),
	lookup("volume", "VOLUME", reftype.Copy, lvHost),
	lookup("part", "PART", reftype.Copy, lvHost),
	lookup("edition", "EDITION", reftype.Copy, lvMain),
	lookup("volumes", "NUMVOLUMES", reftype.Copy, lvHost),
	lookup("number", "NUMBER", reftype.Copy, lvMain),
	lookup("note", "NOTES", reftype.Copy, lvMain),
	lookup("annote", "NOTES", reftype.Copy, lvMain),
	lookup("annotation", "NOTES", reftype.Copy, lvMain),
	lookup("publisher", "PUBLISHER", reftype.Copy, lvHost),
	lookup("location", "LOCATION", reftype.Copy, lvHost),
	lookup("isbn", "ISBN", reftype.SerialNo, lvMain),
	lookup("chapter", "CHAPTER", reftype.Copy, lvMain),
	lookup("pages", "PAGES", reftype.Pages, lvMain),
	lookup("addendum", "ADDENDUM", reftype.Copy, lvMain),
	lookup("doi", "DOI", reftype.Copy, lvMain),
	lookup("eprint", "", reftype.Eprint, lvMain),
	lookup("eprinttype", "", reftype.Eprint, lvMain),
	lookup("url", "", reftype.URL, lvMain),
	lookup("urldate", "URLDATE", reftype.Copy, lvMain),
	lookup("urlday", "URLDAY", reftype.Copy, lvMain),
	lookup("urlmonth", "URLMONTH", reftype.Copy, lvMain),
	lookup("urlyear", "URLYEAR", reftype.Copy, lvMain),
	lookup("address", "ADDRESS", reftype.Copy, lvMain),
	lookup("refnum", "REFNUM", reftype.Copy, lvMain),
	always("INTERNAL_TYPE", "INPROCEEDINGS", lvMain),
	always("RESOURCE", "text", lvMain),
	always("ISSUANCE", "monographic", lvMain),
	always("GENRE", "conference publication", lvHost),
	lookup("keywords", "KEYWORD", reftype.Keyword, lvMain),
	lookup("file", "FILEATTACH", reftype.LinkedFile, lvMain),
}

var blManual = []reftype.Lookup{
	lookup("author", "AUTHOR", reftype.Person, lvMain),
	lookup("editor", "EDITOR", reftype.Person, lvMain),
	lookup("redactor", "REDACTOR", reftype.Person, lvMain),
	lookup("annotator", "ANNOTATOR", reftype.Person, lvMain),
	lookup("commentator", "COMMENTATOR", reftype.Person, lvMain),
	lookup("translator", "TRANSLATOR", reftype.Person, lvMain),
	lookup("year", "YEAR", reftype.Copy, lvMain),
	lookup("introduction", "INTRODUCTION", reftype.Copy, lvMain),
	lookup("foreward", "FOREWARD", reftype.Copy, lvMain),
	lookup("afterward", "AFTERWARD", reftype.Copy, lvMain),
	lookup("title", "TITLE", reftype.Title, lvMain),
	lookup("subtitle", "SUBTITLE", reftype.Copy, lvMain),
	lookup("titleaddon", "TITLEADDON", reftype.Copy, lvMain),
	lookup("language", "LANGUAGE", reftype.Copy, lvMain),
	lookup("edition", "EDITION", reftype.Copy, lvMain),
	lookup("version", "VERSION", reftype.Copy, lvMain),
	lookup("type", "GENRE", reftype.Genre, lvMain),
	lookup("series", "TITLE", reftype.Title, lvHost),
	lookup("number", "NUMBER", reftype.Copy, lvMain),
	lookup("note", "NOTES", reftype.Copy, lvMain),
	lookup("annote", "NOTES", reftype.Copy, lvMain),
	lookup("annotation", "NOTES", reftype.Copy, lvMain),
	lookup("organization", "ORGANIZER:CORP", reftype.Copy, lvMain),
	lookup("publisher", "PUBLISHER", reftype.Copy, lvMain),
	lookup("location", "LOCATION", reftype.Copy, lvMain),
	lookup("isbn", "ISBN", reftype.SerialNo, lvMain),
	lookup("chapter", "CHAPTER", reftype.Copy, lvMain),
	lookup("pages", "", reftype.Pages, lvMain),
	lookup("pagetotal", "TOTALPAGES", reftype.Copy, lvMain),
	lookup("addendum", "ADDENDUM", reftype.Copy, lvMain),
	lookup("doi", "DOI", reftype.Copy, lvMain),
	lookup("eprint", "", reftype.Eprint, lvMain),
	lookup("eprinttype", "", reftype.Eprint, lvMain),
	lookup("url", "", reftype.URL, lvMain),
	lookup("urldate", "URLDATE", reftype.Copy, lvMain),
	lookup("urlday", "URLDAY", reftype.Copy, lvMain),
	lookup("urlmonth", "URLMONTH", reftype.Copy, lvMain),
	lookup("urlyear", "URLYEAR", reftype.Copy, lvMain),
	lookup("address", "ADDRESS", reftype.Copy, lvMain),
	lookup("refnum", "REFNUM", reftype.Copy, lvMain),
	always("INTERNAL_TYPE", "REPORT", lvMain),
	always("RESOURCE", "text", lvMain),
	always("GENRE", "instruction", lvMain),
	lookup("keywords", "KEYWORD", reftype.Keyword, lvMain),
	lookup("file", "FILEATTACH", reftype.LinkedFile, lvMain),
}

var blMisc = []reftype.Lookup{
	lookup("author", "AUTHOR", reftype.Person, lvMain),
	lookup("editor", "EDITOR", reftype.Person, lvMain),
	lookup("title", "TITLE", reftype.Title, lvMain),
	lookup("subtitle", "SUBTITLE", reftype.Copy, lvMain),
	lookup("titleaddon", "TITLEADDON", reftype.Copy, lvMain),
	lookup("day", "DAY", reftype.Copy, lvMain),
	lookup("month", "MONTH", reftype.Copy, lvMain),
	lookup("year", "YEAR", reftype.Copy, lvMain),
	lookup("language", "LANGUAGE", reftype.Copy, lvMain),
	lookup("howpublished", "", reftype.HowPublished, lvMain),
	lookup("version", "VERSION", reftype.Copy, lvMain),
	lookup("type", "GENRE", reftype.Genre, lvMain),
	lookup("note", "NOTES", reftype.Copy, lvMain),
	lookup("annote", "NOTES", reftype.Copy, lvMain),
	lookup("annotation", "NOTES", reftype.Copy, lvMain),
	lookup("organization", "ORGANIZER:CORP", reftype.Copy, lvMain),
	lookup("publisher", "PUBLISHER", reftype.Copy, lvMain),
	lookup("location", "LOCATION", reftype.Copy, lvMain),
	lookup("addendum", "ADDENDUM", reftype.Copy, lvMain),
	lookup("address", "ADDRESS", reftype.Copy, lvMain),
	lookup("doi", "DOI", reftype.Copy, lvMain),
	lookup("eprint", "", reftype.Eprint, lvMain),
	lookup("eprinttype", "", reftype.Eprint, lvMain),
	lookup("url", "", reftype.URL, lvMain),
	lookup("urldate", "URLDATE", reftype.Copy, lvMain),
	lookup("urlday", "URLDAY", reftype.Copy, lvMain),
	lookup("urlmonth", "URLMONTH", reftype.Copy, lvMain),
	lookup("urlyear", "URLYEAR", reftype.Copy, lvMain),
	lookup("refnum", "REFNUM", reftype.Copy, lvMain),
	always("INTERNAL_TYPE", "MISC", lvMain),
	lookup("keywords", "KEYWORD", reftype.Keyword, lvMain),
	lookup("file", "FILEATTACH", reftype.LinkedFile, lvMain),
}

var blOnline = []reftype.Lookup{
	lookup("author", "AUTHOR", reftype.Person, lvMain),
	lookup("editor", "EDITOR", reftype.Person, lvMain),
	lookup("title", "TITLE", reftype.Title, lvMain),
	lookup("subtitle", "SUBTITLE", reftype.Copy, lvMain),
	lookup("titleaddon", "TITLEADDON", reftype.Copy, lvMain),
	lookup("date", "DATE", reftype.Copy, lvMain),
	lookup("day", "DAY", reftype.Copy, lvMain),
	lookup("month", "MONTH", reftype.Copy, lvMain),
	lookup("year", "YEAR", reftype.Copy, lvMain),
	lookup("language", "LANGUAGE", reftype.Copy, lvMain),
	lookup("version", "VERSION", reftype.Copy, lvMain),
	lookup("type", "GENRE", reftype.Genre, lvMain),
	lookup("note", "NOTES", reftype.Copy, lvMain),
	lookup("annote", "NOTES", reftype.Copy, lvMain),
	lookup("annotation", "NOTES", reftype.Copy, lvMain),
	lookup("organization", "ORGANIZER:CORP", reftype.Copy, lvMain),
	lookup("publisher", "PUBLISHER", reftype.Copy, lvMain),
	lookup("location", "LOCATION", reftype.Copy, lvMain),
	lookup("addendum", "ADDENDUM", reftype.Copy, lvMain),
	lookup("doi", "DOI", reftype.Copy, lvMain),
	lookup("eprint", "", reftype.Eprint, lvMain),
	lookup("eprinttype", "", reftype.Eprint, lvMain),
	lookup("url", "", reftype.URL, lvMain),
	lookup("urldate", "URLDATE", reftype.Copy, lvMain),
	lookup("urlday", "URLDAY", reftype.Copy, lvMain),
	lookup("urlmonth", "URLMONTH", reftype.Copy, lvMain),
	lookup("urlyear", "URLYEAR", reftype.Copy, lvMain),
	lookup("address", "ADDRESS", reftype.Copy, lvMain),
	lookup("refnum", "REFNUM", reftype.Copy, lvMain),
	always("RESOURCE", "software, multimedia", lvMain),
	always("GENRE", "web page", lvMain),
	lookup("keywords", "KEYWORD", reftype.Keyword, lvMain),
	lookup("file", "FILEATTACH", reftype.LinkedFile, lvMain),
}

var blPatent = []reftype.Lookup{
	lookup("author", "AUTHOR", reftype.Person, lvMain),
	lookup("holder", "ASSIGNEE", reftype.Person, lvMain),
	lookup("title", "TITLE", reftype.Title, lvMain),
	lookup("subtitle", "SUBTITLE", reftype.Copy, lvMain),
	lookup("titleaddon", "TITLEADDON", reftype.Copy, lvMain),
	lookup("date", "DATE", reftype.Copy, lvMain),
	lookup("day", "DAY", reftype.Copy, lvMain),
	lookup("month", "MONTH", reftype.Copy, lvMain),
	lookup("year", "YEAR", reftype.Copy, lvMain),
	lookup("version", "VERSION", reftype.Copy, lvMain),
	lookup("type", "GENRE", reftype.Genre, lvMain),
	lookup("note", "NOTES", reftype.Copy, lvMain),
	lookup("annote", "NOTES", reftype.Copy, lvMain),
	lookup("annotation", "NOTES", reftype.Copy, lvMain),
	lookup("organization", "ORGANIZER:CORP", reftype.Copy, lvMain),
	lookup("location", "LOCATION", reftype.Copy, lvMain),
	lookup("number", "NUMBER", reftype.Copy, lvMain),
	lookup("addendum", "ADDENDUM", reftype.Copy, lvMain),
	lookup("url", "", reftype.URL, lvMain),
	lookup("urldate", "URLDATE", reftype.Copy, lvMain),
	lookup("urlday", "URLDAY", reftype.Copy, lvMain),
	lookup("urlmonth", "URLMONTH", reftype.Copy, lvMain),
	lookup("urlyear", "URLYEAR", reftype.Copy, lvMain),
	lookup("address", "ADDRESS", reftype.Copy, lvMain),
	lookup("refnum", "REFNUM", reftype.Copy, lvMain),
	always("RESOURCE", "text", lvMain),
	always("INTERNAL_TYPE", "PATENT", lvMain),
	always("GENRE", "patent", lvMain),
	lookup("keywords", "KEYWORD", reftype.Keyword, lvMain),
	lookup("file", "FILEATTACH", reftype.LinkedFile, lvMain),
}

var blPeriodical = []reftype.Lookup{
	lookup("editor", "EDITOR", reftype.Person, lvMain),
	lookup("title", "TITLE", reftype.Title, lvMain),
	lookup("subtitle", "SUBTITLE", reftype.Copy, lvMain),
	lookup("titleaddon", "TITLEADDON", reftype.Copy, lvMain),
	lookup("issuetitle", "TITLE", reftype.Title, lvSeries),
	lookup("issuesubtitle", "SUBTITLE", reftype.Copy, lvSeries),
	lookup("series", "TITLE", reftype.Title, lvSeries),
	lookup("volume", "VOLUME", reftype.Copy, lvMain),
	lookup("number", "NUMBER", reftype.Copy, lvMain),
	lookup("issue", "ISSUE", reftype.Copy, lvMain),
	lookup("date", "DATE", reftype.Copy, lvMain),
	lookup("day", "PARTDAY", reftype.Copy, lvMain),
	lookup("month", "PARTMONTH", reftype.Copy, lvMain),
	lookup("year", "PARTYEAR", reftype.Copy, lvMain),
	lookup("pages", "PAGES", reftype.Pages, lvMain),
	lookup("note", "NOTES", reftype.Copy, lvMain),
	lookup("annote", "NOTES", reftype.Copy, lvMain),
	lookup("annotation", "NOTES", reftype.Copy, lvMain),
	lookup("issn", "ISSN", reftype.SerialNo, lvHost),
	lookup("addendum", "ADDENDUM", reftype.Copy, lvMain),
	lookup("doi", "DOI", reftype.Copy, lvMain),
	lookup("eprint", "", reftype.Eprint, lvMain),
	lookup("eprinttype", "", reftype.Eprint, lvMain),
	lookup("url", "", reftype.URL, lvMain),
	lookup("urldate", "URLDATE", reftype.Copy, lvMain),
	lookup("urlday", "URLDAY", reftype.Copy, lvMain),
	lookup("urlmonth", "URLMONTH", reftype.Copy, lvMain),
	lookup("urlyear", "URLYEAR", reftype.Copy, lvMain),
	lookup("address", "ADDRESS", reftype.Copy, lvMain),
	lookup("refnum", "REFNUM", reftype.Copy, lvMain),
	always("ISSUANCE", "continuing", lvMain),
	always("RESOURCE", "text", lvMain),
	always("GENRE", "periodical", lvMain),
	lookup("keywords", "KEYWORD", reftype.Keyword, lvMain),
	lookup("file", "FILEATTACH", reftype.LinkedFile, lvMain),
}

var blProceedings = []reftype.Lookup{
	lookup("editor", "EDITOR", reftype.Person, lvMain),
	lookup("redactor", "REDACTOR", reftype.Person, lvMain),
	lookup("annotator", "ANNOTATOR", reftype.Person, lvMain),
	lookup("commentator", "COMMENTATOR", reftype.Person, lvMain),
	lookup("translator", "TRANSLATOR", reftype.Person, lvMain),
	lookup("eventtitle", "EVENT:CONF", reftype.Copy, lvMain),
	lookup("year", "YEAR", reftype.Copy, lvMain),
	lookup("introduction", "INTRODUCTION", reftype.Copy, lvMain),
	lookup("foreward", "FOREWARD", reftype.Copy, lvMain),
	lookup("afterward", "AFTERWARD", reftype.Copy, lvMain),
	lookup("title", "TITLE", reftype.Title, lvMain),
	lookup("subtitle", "SUBTITLE", reftype.Copy, lvMain),
	lookup("titleaddon", "TITLEADDON", reftype.Copy, lvMain),
	lookup("maintitle", "TITLE", reftype.Title, lvHost),
	lookup("mainsubtitle", "SUBTITLE", reftype.Copy, lvHost),
	lookup("maintitleaddon", "MAINTITLEADDON", reftype.Copy, lvHost),
	lookup("language", "LANGUAGE", reftype.Copy, lvMain),
	lookup("origlanguage", "LANGUAGE", reftype.Copy, lvOrig),
	lookup("volume", "VOLUME", reftype.Copy, lvHost),
	lookup("part", "PART", reftype.Copy, lvHost),
	lookup("edition", "EDITION", reftype.Copy, lvMain),
	lookup("volumes", "NUMVOLUMES", reftype.Copy, lvHost),
	lookup("series", "TITLE", reftype.Title, lvHost),
	lookup("number", "NUMBER", reftype.Copy, lvMain),
	lookup("note", "NOTES", reftype.Copy, lvMain),
	lookup("annote", "NOTES", reftype.Copy, lvMain),
	lookup("annotation", "NOTES", reftype.Copy, lvMain),
	lookup("organization", "ORGANIZER:CORP", reftype.Copy, lvMain),
	lookup("publisher", "PUBLISHER", reftype.Copy, lvMain),
	lookup("location", "LOCATION", reftype.Copy, lvMain),
	lookup("isbn", "ISBN", reftype.SerialNo, lvMain),
	lookup("chapter", "CHAPTER", reftype.Copy, lvMain),
	lookup("pages", "", reftype.Pages, lvMain),
	lookup("pagetotal", "TOTALPAGES", reftype.Copy, lvMain),
	lookup("addendum", "ADDENDUM", reftype.Copy, lvMain),
	lookup("doi", "DOI", reftype.Copy, lvMain),
	lookup("eprint", "", reftype.Eprint, lvMain),
	lookup("eprinttype", "", reftype.Eprint, lvMain),
	lookup("url", "", reftype.URL, lvMain),
	lookup("urldate", "URLDATE", reftype.Copy, lvMain),
	lookup("urlday", "URLDAY", reftype.Copy, lvMain),
	lookup("urlmonth", "URLMONTH", reftype.Copy, lvMain),
	lookup("urlyear", "URLYEAR", reftype.Copy, lvMain),
	lookup("address", "ADDRESS", reftype.Copy, lvMain),
	lookup("refnum", "REFNUM", reftype.Copy, lvMain),
	always("INTERNAL_TYPE", "BOOK", lvMain),
	always("RESOURCE", "text", lvMain),
	always("GENRE", "conference publication", lvMain),
	lookup("keywords", "KEYWORD", reftype.Keyword, lvMain),
	lookup("file", "FILEATTACH", reftype.LinkedFile, lvMain),
}

var blReport = []reftype.Lookup{
	lookup("author", "AUTHOR", reftype.Person, lvMain),
	lookup("title", "TITLE", reftype.Title, lvMain),
	lookup("subtitle", "SUBTITLE", reftype.Copy, lvMain),
	lookup("titleaddon", "TITLEADDON", reftype.Copy, lvMain),
	lookup("year", "YEAR", reftype.Copy, lvMain),
	lookup("language", "LANGUAGE", reftype.Copy, lvMain),
	lookup("number", "NUMBER", reftype.Copy, lvMain),
	lookup("note", "NOTES", reftype.Copy, lvMain),
	lookup("annote", "NOTES", reftype.Copy, lvMain),
	lookup("annotation", "NOTES", reftype.Copy, lvMain),
	lookup("version", "VERSION", reftype.Copy, lvMain),
	lookup("location", "LOCATION", reftype.Copy, lvMain),
	lookup("isrn", "ISRN", reftype.Copy, lvMain),
	lookup("chapter", "CHAPTER", reftype.Copy, lvMain),
	lookup("pages", "", reftype.Pages, lvMain),
	lookup("pagetotal", "TOTALPAGES", reftype.Copy, lvMain),
	lookup("addendum", "ADDENDUM", reftype.Copy, lvMain),
	lookup("doi", "DOI", reftype.Copy, lvMain),
	lookup("eprint", "", reftype.Eprint, lvMain),
	lookup("eprinttype", "", reftype.Eprint, lvMain),
	lookup("url", "", reftype.URL, lvMain),
	lookup("urldate", "URLDATE", reftype.Copy, lvMain),
	lookup("urlday", "URLDAY", reftype.Copy, lvMain),
	lookup("urlmonth", "URLMONTH", reftype.Copy, lvMain),
	lookup("urlyear", "URLYEAR", reftype.Copy, lvMain),
	lookup("address", "ADDRESS", reftype.Copy, lvMain),
	lookup("refnum", "REFNUM", reftype.Copy, lvMain),
	always("INTERNAL_TYPE", "REPORT", lvMain),
	always("RESOURCE", "text", lvMain),
	always("GENRE", "report", lvMain),
	lookup("keywords", "KEYWORD", reftype.Keyword, lvMain),
	lookup("file", "FILEATTACH", reftype.LinkedFile, lvMain),
}

var blThesis = []reftype.Lookup{
	lookup("author", "AUTHOR", reftype.Person, lvMain),
	lookup("title", "TITLE", reftype.Title, lvMain),
	lookup("subtitle", "SUBTITLE", reftype.Copy, lvMain),
	lookup("titleaddon", "TITLEADDON", reftype.Copy, lvMain),
	lookup("year", "YEAR", reftype.Copy, lvMain),
	lookup("month", "MONTH", reftype.Copy, lvMain),
	lookup("day", "DAY", reftype.Copy, lvMain),
	lookup("type", "GENRE", reftype.Genre, lvMain),
	lookup("institution", "DEGREEGRANTOR:ASIS", reftype.Copy, lvMain),
	lookup("school", "DEGREEGRANTOR:ASIS", reftype.Copy, lvMain),
	lookup("doi", "DOI", reftype.Copy, lvMain),
	lookup("howpublished", "", reftype.HowPublished, lvMain),
	lookup("url", "", reftype.URL, lvMain),
	lookup("urldate", "URLDATE", reftype.Copy, lvMain),
	lookup("urlday", "URLDAY", reftype.Copy, lvMain),
	lookup("urlmonth", "URLMONTH", reftype.Copy, lvMain),
	lookup("urlyear", "URLYEAR", reftype.Copy, lvMain),
	lookup("language", "LANGUAGE", reftype.Copy, lvMain),
	lookup("location", "LOCATION", reftype.Copy, lvMain),
	lookup("note", "NOTES", reftype.Copy, lvMain),
	lookup("annote", "NOTES", reftype.Copy, lvMain),
	lookup("annotation", "NOTES", reftype.Copy, lvMain),
	lookup("address", "ADDRESS", reftype.Copy, lvMain),
	lookup("refnum", "REFNUM", reftype.Copy, lvMain),
	always("INTERNAL_TYPE", "THESIS", lvMain),
	always("RESOURCE", "text", lvMain),
	always("GENRE", "thesis", lvMain),
	lookup("keywords", "KEYWORD", reftype.Keyword, lvMain),
	lookup("file", "FILEATTACH", reftype.LinkedFile, lvMain),
}

var blUnpublished = []reftype.Lookup{
	lookup("author", "AUTHOR", reftype.Person, lvMain),
	lookup("title", "TITLE", reftype.Title, lvMain),
	lookup("subtitle", "SUBTITLE", reftype.Copy, lvMain),
	lookup("titleaddon", "TITLEADDON", reftype.Copy, lvMain),
	lookup("howpublished", "", reftype.HowPublished, lvMain),
	lookup("year", "YEAR", reftype.Copy, lvMain),
	lookup("month", "MONTH", reftype.Copy, lvMain),
	lookup("day", "DAY", reftype.Copy, lvMain),
	lookup("date", "DATE", reftype.Copy, lvMain),
	lookup("url", "", reftype.URL, lvMain),
	lookup("urlday", "URLDAY", reftype.Copy, lvMain),
	lookup("urlmonth", "URLMONTH", reftype.Copy, lvMain),
	lookup("urlyear", "URLYEAR", reftype.Copy, lvMain),
	lookup("language", "LANGUAGE", reftype.Copy, lvMain),
	lookup("note", "NOTES", reftype.Copy, lvMain),
	lookup("annote", "NOTES", reftype.Copy, lvMain),
	lookup("annotation", "NOTES", reftype.Copy, lvMain),
	lookup("addendum", "ADDENDUM", reftype.Copy, lvMain),
	lookup("address", "ADDRESS", reftype.Copy, lvMain),
	lookup("refnum", "REFNUM", reftype.Copy, lvMain),
	always("INTERNAL_TYPE", "BOOK", lvMain),
	always("RESOURCE", "text", lvMain),
	always("GENRE", "unpublished", lvMain),
	lookup("keywords", "KEYWORD", reftype.Keyword, lvMain),
	lookup("file", "FILEATTACH", reftype.LinkedFile, lvMain),
}

var blPhdthesis = []reftype.Lookup{
	lookup("author", "AUTHOR", reftype.Person, lvMain),
	lookup("title", "TITLE", reftype.Title, lvMain),
	lookup("subtitle", "SUBTITLE", reftype.Copy, lvMain),
	lookup("titleaddon", "TITLEADDON", reftype.Copy, lvMain),
	lookup("year", "YEAR", reftype.Copy, lvMain),
	lookup("month", "MONTH", reftype.Copy, lvMain),
	lookup("day", "DAY", reftype.Copy, lvMain),
	lookup("type", "GENRE", reftype.Genre, lvMain),
	lookup("institution", "DEGREEGRANTOR:ASIS", reftype.Copy, lvMain),
	lookup("school", "DEGREEGRANTOR:ASIS", reftype.Copy, lvMain),
	lookup("doi", "DOI", reftype.Copy, lvMain),
	lookup("howpublished", "", reftype.HowPublished, lvMain),
	lookup("url", "", reftype.URL, lvMain),
	lookup("urldate", "URLDATE", reftype.Copy, lvMain),
	lookup("urlday", "URLDAY", reftype.Copy, lvMain),
	lookup("urlmonth", "URLMONTH", reftype.Copy, lvMain),
	lookup("urlyear", "URLYEAR", reftype.Copy, lvMain),
	lookup("language", "LANGUAGE", reftype.Copy, lvMain),
	lookup("location", "LOCATION", reftype.Copy, lvMain),
	lookup("note", "NOTES", reftype.Copy, lvMain),
	lookup("annote", "NOTES", reftype.Copy, lvMain),
	lookup("annotation", "NOTES", reftype.Copy, lvMain),
	lookup("address", "ADDRESS", reftype.Copy, lvMain),
	lookup("refnum", "REFNUM", reftype.Copy, lvMain),
	always("INTERNAL_TYPE", "THESIS", lvMain),
	always("RESOURCE", "text", lvMain),
	always("GENRE", "Ph.D. thesis", lvMain),
	lookup("keywords", "KEYWORD", reftype.Keyword, lvMain),
	lookup("file", "FILEATTACH", reftype.LinkedFile, lvMain),
}

var blMastersthesis = []reftype.Lookup{
	lookup("author", "AUTHOR", reftype.Person, lvMain),
	lookup("title", "TITLE", reftype.Title, lvMain),
	lookup("subtitle", "SUBTITLE", reftype.Copy, lvMain),
	lookup("titleaddon", "TITLEADDON", reftype.Copy, lvMain),
	lookup("year", "YEAR", reftype.Copy, lvMain),
	lookup("month", "MONTH", reftype.Copy, lvMain),
	lookup("day", "DAY", reftype.Copy, lvMain),
	lookup("type", "GENRE", reftype.Genre, lvMain),
	lookup("institution", "DEGREEGRANTOR:ASIS", reftype.Copy, lvMain),
	lookup("school", "DEGREEGRANTOR:ASIS", reftype.Copy, lvMain),
	lookup("doi", "DOI", reftype.Copy, lvMain),
	lookup("howpublished", "", reftype.HowPublished, lvMain),
	lookup("url", "", reftype.URL, lvMain),
	lookup("urldate", "URLDATE", reftype.Copy, lvMain),
	lookup("urlday", "URLDAY", reftype.Copy, lvMain),
	lookup("urlmonth", "URLMONTH", reftype.Copy, lvMain),
	lookup("urlyear", "URLYEAR", reftype.Copy, lvMain),
	lookup("language", "LANGUAGE", reftype.Copy, lvMain),
	lookup("location", "LOCATION", reftype.Copy, lvMain),
	lookup("note", "NOTES", reftype.Copy, lvMain),
	lookup("annote", "NOTES", reftype.Copy, lvMain),
	lookup("annotation", "NOTES", reftype.Copy, lvMain),
	lookup("address", "ADDRESS", reftype.Copy, lvMain),
	lookup("refnum", "REFNUM", reftype.Copy, lvMain),
	always("INTERNAL_TYPE", "THESIS", lvMain),
	always("RESOURCE", "text", lvMain),
	always("GENRE", "Masters thesis", lvMain),
	lookup("keywords", "KEYWORD", reftype.Keyword, lvMain),
	lookup("file", "FILEATTACH", reftype.LinkedFile, lvMain),
}
