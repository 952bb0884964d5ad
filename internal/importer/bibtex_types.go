package importer

import (
	"slices"

	"github.com/matsen/bibconv/internal/fields"
	"github.com/matsen/bibconv/internal/reftype"
)

const (
	lvMain   = fields.LevelMain
	lvHost   = fields.LevelHost
	lvSeries = fields.LevelSeries
	lvOrig   = fields.LevelOrig
)

func lookup(source, dest string, d reftype.Directive, level int) reftype.Lookup {
	return reftype.Lookup{Source: source, Dest: dest, Directive: d, Level: level}
}

func always(tag, value string, level int) reftype.Lookup {
	return reftype.Synth(tag, value, level)
}

// bibtexCommon lists the tags every BibTeX entry type accepts.
var bibtexCommon = []reftype.Lookup{
	lookup("refnum", "REFNUM", reftype.Copy, lvMain),
	lookup("key", "", reftype.Skip, lvMain),
	lookup("crossref", "", reftype.Skip, lvMain),
	lookup("translator", "TRANSLATOR", reftype.Person, lvMain),
	lookup("language", "LANGUAGE", reftype.Copy, lvMain),
	lookup("abstract", "ABSTRACT", reftype.Copy, lvMain),
	lookup("keywords", "KEYWORD", reftype.Keyword, lvMain),
	lookup("keyword", "KEYWORD", reftype.Keyword, lvMain),
	lookup("note", "NOTES", reftype.Note, lvMain),
	lookup("annote", "NOTES", reftype.Copy, lvMain),
	lookup("doi", "DOI", reftype.Copy, lvMain),
	lookup("url", "", reftype.URL, lvMain),
	lookup("howpublished", "", reftype.HowPublished, lvMain),
	lookup("eprint", "", reftype.Eprint, lvMain),
	lookup("eprinttype", "", reftype.Eprint, lvMain),
	lookup("archiveprefix", "EPRINTTYPE", reftype.Copy, lvMain),
	lookup("pmid", "PMID", reftype.Copy, lvMain),
	lookup("file", "FILEATTACH", reftype.LinkedFile, lvMain),
	lookup("pdf", "FILEATTACH", reftype.LinkedFile, lvMain),
	lookup("sentelink", "", reftype.Sente, lvMain),
	lookup("location", "LOCATION", reftype.Copy, lvMain),
}

func bibtexVariant(name string, lookups ...reftype.Lookup) reftype.Variant {
	return reftype.Variant{Name: name, Lookups: slices.Concat(lookups, bibtexCommon)}
}

var (
	btArticle = bibtexVariant("article",
		lookup("author", "AUTHOR", reftype.Person, lvMain),
		lookup("editor", "EDITOR", reftype.Person, lvMain),
		lookup("title", "TITLE", reftype.Title, lvMain),
		lookup("journal", "TITLE", reftype.Title, lvHost),
		lookup("year", "PARTYEAR", reftype.Copy, lvMain),
		lookup("month", "PARTMONTH", reftype.Copy, lvMain),
		lookup("day", "PARTDAY", reftype.Copy, lvMain),
		lookup("date", "", reftype.Date, lvMain),
		lookup("volume", "VOLUME", reftype.Copy, lvMain),
		lookup("number", "NUMBER", reftype.Copy, lvMain),
		lookup("issue", "ISSUE", reftype.Copy, lvMain),
		lookup("pages", "", reftype.Pages, lvMain),
		lookup("publisher", "PUBLISHER", reftype.Copy, lvHost),
		lookup("address", "ADDRESS", reftype.Copy, lvHost),
		lookup("issn", "ISSN", reftype.SerialNo, lvHost),
		always("INTERNAL_TYPE", "ARTICLE", lvMain),
		always("ISSUANCE", "continuing", lvHost),
		always("RESOURCE", "text", lvMain),
		always("GENRE", "journal article", lvMain),
		always("GENRE", "periodical", lvHost),
	)

	btBook = bibtexVariant("book",
		lookup("author", "AUTHOR", reftype.Person, lvMain),
		lookup("editor", "EDITOR", reftype.Person, lvMain),
		lookup("title", "TITLE", reftype.Title, lvMain),
		lookup("year", "YEAR", reftype.Copy, lvMain),
		lookup("month", "MONTH", reftype.Copy, lvMain),
		lookup("edition", "EDITION", reftype.Copy, lvMain),
		lookup("volume", "VOLUME", reftype.Copy, lvMain),
		lookup("number", "NUMBER", reftype.Copy, lvMain),
		lookup("pages", "", reftype.Pages, lvMain),
		lookup("publisher", "PUBLISHER", reftype.Copy, lvMain),
		lookup("organization", "", reftype.Organization, lvMain),
		lookup("address", "ADDRESS", reftype.Copy, lvMain),
		lookup("series", "TITLE", reftype.Title, lvHost),
		lookup("isbn", "ISBN", reftype.SerialNo, lvMain),
		always("INTERNAL_TYPE", "BOOK", lvMain),
		always("RESOURCE", "text", lvMain),
		always("ISSUANCE", "monographic", lvMain),
		always("GENRE", "book", lvMain),
	)

	btBooklet = bibtexVariant("booklet",
		lookup("author", "AUTHOR", reftype.Person, lvMain),
		lookup("editor", "EDITOR", reftype.Person, lvMain),
		lookup("title", "TITLE", reftype.Title, lvMain),
		lookup("year", "YEAR", reftype.Copy, lvMain),
		lookup("month", "MONTH", reftype.Copy, lvMain),
		lookup("address", "ADDRESS", reftype.Copy, lvMain),
		lookup("publisher", "PUBLISHER", reftype.Copy, lvMain),
		always("INTERNAL_TYPE", "BOOK", lvMain),
		always("RESOURCE", "text", lvMain),
		always("ISSUANCE", "monographic", lvMain),
		always("GENRE", "book", lvMain),
	)

	// A plain @inbook title names the book; see inbookTitle.
	btInbook = bibtexVariant("inbook",
		lookup("author", "AUTHOR", reftype.Person, lvMain),
		lookup("editor", "EDITOR", reftype.Person, lvHost),
		lookup("bookauthor", "AUTHOR", reftype.Person, lvHost),
		lookup("title", "TITLE", reftype.Title, lvHost),
		lookup("booktitle", "TITLE", reftype.Title, lvHost),
		lookup("chapter", "CHAPTER", reftype.Copy, lvMain),
		lookup("pages", "", reftype.Pages, lvMain),
		lookup("year", "YEAR", reftype.Copy, lvHost),
		lookup("month", "MONTH", reftype.Copy, lvHost),
		lookup("edition", "EDITION", reftype.Copy, lvHost),
		lookup("volume", "VOLUME", reftype.Copy, lvHost),
		lookup("publisher", "PUBLISHER", reftype.Copy, lvHost),
		lookup("address", "ADDRESS", reftype.Copy, lvHost),
		lookup("series", "TITLE", reftype.Title, lvSeries),
		lookup("isbn", "ISBN", reftype.SerialNo, lvHost),
		always("INTERNAL_TYPE", "INBOOK", lvMain),
		always("RESOURCE", "text", lvMain),
		always("ISSUANCE", "monographic", lvHost),
		always("GENRE", "book chapter", lvMain),
		always("GENRE", "book", lvHost),
	)

	btIncollection = bibtexVariant("incollection",
		lookup("author", "AUTHOR", reftype.Person, lvMain),
		lookup("editor", "EDITOR", reftype.Person, lvHost),
		lookup("title", "TITLE", reftype.Title, lvMain),
		lookup("booktitle", "TITLE", reftype.Title, lvHost),
		lookup("chapter", "CHAPTER", reftype.Copy, lvMain),
		lookup("pages", "", reftype.Pages, lvMain),
		lookup("year", "YEAR", reftype.Copy, lvHost),
		lookup("month", "MONTH", reftype.Copy, lvHost),
		lookup("edition", "EDITION", reftype.Copy, lvHost),
		lookup("volume", "VOLUME", reftype.Copy, lvHost),
		lookup("publisher", "PUBLISHER", reftype.Copy, lvHost),
		lookup("address", "ADDRESS", reftype.Copy, lvHost),
		lookup("series", "TITLE", reftype.Title, lvSeries),
		lookup("isbn", "ISBN", reftype.SerialNo, lvHost),
		always("INTERNAL_TYPE", "INCOLLECTION", lvMain),
		always("RESOURCE", "text", lvMain),
		always("ISSUANCE", "monographic", lvHost),
		always("GENRE", "collection", lvHost),
	)

	btInproceedings = bibtexVariant("inproceedings",
		lookup("author", "AUTHOR", reftype.Person, lvMain),
		lookup("editor", "EDITOR", reftype.Person, lvHost),
		lookup("title", "TITLE", reftype.Title, lvMain),
		lookup("booktitle", "TITLE", reftype.Title, lvHost),
		lookup("pages", "", reftype.Pages, lvMain),
		lookup("year", "YEAR", reftype.Copy, lvHost),
		lookup("month", "MONTH", reftype.Copy, lvHost),
		lookup("volume", "VOLUME", reftype.Copy, lvHost),
		lookup("number", "NUMBER", reftype.Copy, lvHost),
		lookup("publisher", "PUBLISHER", reftype.Copy, lvHost),
		lookup("organization", "", reftype.Organization, lvHost),
		lookup("address", "ADDRESS", reftype.Copy, lvHost),
		lookup("series", "TITLE", reftype.Title, lvSeries),
		lookup("isbn", "ISBN", reftype.SerialNo, lvHost),
		always("INTERNAL_TYPE", "INPROCEEDINGS", lvMain),
		always("RESOURCE", "text", lvMain),
		always("GENRE", "conference publication", lvHost),
	)

	btManual = bibtexVariant("manual",
		lookup("author", "AUTHOR", reftype.Person, lvMain),
		lookup("title", "TITLE", reftype.Title, lvMain),
		lookup("organization", "", reftype.Organization, lvMain),
		lookup("edition", "EDITION", reftype.Copy, lvMain),
		lookup("year", "YEAR", reftype.Copy, lvMain),
		lookup("month", "MONTH", reftype.Copy, lvMain),
		lookup("address", "ADDRESS", reftype.Copy, lvMain),
		always("INTERNAL_TYPE", "REPORT", lvMain),
		always("RESOURCE", "text", lvMain),
		always("GENRE", "instruction", lvMain),
	)

	btMastersthesis = bibtexVariant("mastersthesis",
		lookup("author", "AUTHOR", reftype.Person, lvMain),
		lookup("title", "TITLE", reftype.Title, lvMain),
		lookup("school", "DEGREEGRANTOR:ASIS", reftype.Copy, lvMain),
		lookup("year", "YEAR", reftype.Copy, lvMain),
		lookup("month", "MONTH", reftype.Copy, lvMain),
		lookup("address", "ADDRESS", reftype.Copy, lvMain),
		lookup("type", "GENRE", reftype.Genre, lvMain),
		always("INTERNAL_TYPE", "THESIS", lvMain),
		always("RESOURCE", "text", lvMain),
		always("GENRE", "Masters thesis", lvMain),
	)

	btPhdthesis = bibtexVariant("phdthesis",
		lookup("author", "AUTHOR", reftype.Person, lvMain),
		lookup("title", "TITLE", reftype.Title, lvMain),
		lookup("school", "DEGREEGRANTOR:ASIS", reftype.Copy, lvMain),
		lookup("year", "YEAR", reftype.Copy, lvMain),
		lookup("month", "MONTH", reftype.Copy, lvMain),
		lookup("address", "ADDRESS", reftype.Copy, lvMain),
		lookup("type", "GENRE", reftype.Genre, lvMain),
		always("INTERNAL_TYPE", "THESIS", lvMain),
		always("RESOURCE", "text", lvMain),
		always("GENRE", "Ph.D. thesis", lvMain),
	)

	btMisc = bibtexVariant("misc",
		lookup("author", "AUTHOR", reftype.Person, lvMain),
		lookup("editor", "EDITOR", reftype.Person, lvMain),
		lookup("title", "TITLE", reftype.Title, lvMain),
		lookup("year", "YEAR", reftype.Copy, lvMain),
		lookup("month", "MONTH", reftype.Copy, lvMain),
		lookup("publisher", "PUBLISHER", reftype.Copy, lvMain),
		lookup("organization", "", reftype.Organization, lvMain),
		lookup("address", "ADDRESS", reftype.Copy, lvMain),
		lookup("pages", "", reftype.Pages, lvMain),
		lookup("type", "GENRE", reftype.Genre, lvMain),
		always("INTERNAL_TYPE", "MISC", lvMain),
		always("RESOURCE", "text", lvMain),
	)

	btProceedings = bibtexVariant("proceedings",
		lookup("editor", "EDITOR", reftype.Person, lvMain),
		lookup("author", "AUTHOR", reftype.Person, lvMain),
		lookup("title", "TITLE", reftype.Title, lvMain),
		lookup("year", "YEAR", reftype.Copy, lvMain),
		lookup("month", "MONTH", reftype.Copy, lvMain),
		lookup("volume", "VOLUME", reftype.Copy, lvMain),
		lookup("number", "NUMBER", reftype.Copy, lvMain),
		lookup("publisher", "PUBLISHER", reftype.Copy, lvMain),
		lookup("organization", "", reftype.Organization, lvMain),
		lookup("address", "ADDRESS", reftype.Copy, lvMain),
		lookup("series", "TITLE", reftype.Title, lvHost),
		lookup("isbn", "ISBN", reftype.SerialNo, lvMain),
		always("INTERNAL_TYPE", "BOOK", lvMain),
		always("RESOURCE", "text", lvMain),
		always("GENRE", "conference publication", lvMain),
	)

	btTechreport = bibtexVariant("techreport",
		lookup("author", "AUTHOR", reftype.Person, lvMain),
		lookup("title", "TITLE", reftype.Title, lvMain),
		lookup("institution", "PUBLISHER:CORP", reftype.Copy, lvMain),
		lookup("number", "REPORTNUMBER", reftype.Copy, lvMain),
		lookup("type", "GENRE", reftype.Genre, lvMain),
		lookup("year", "YEAR", reftype.Copy, lvMain),
		lookup("month", "MONTH", reftype.Copy, lvMain),
		lookup("address", "ADDRESS", reftype.Copy, lvMain),
		always("INTERNAL_TYPE", "REPORT", lvMain),
		always("RESOURCE", "text", lvMain),
		always("GENRE", "report", lvMain),
	)

	btUnpublished = bibtexVariant("unpublished",
		lookup("author", "AUTHOR", reftype.Person, lvMain),
		lookup("title", "TITLE", reftype.Title, lvMain),
		lookup("year", "YEAR", reftype.Copy, lvMain),
		lookup("month", "MONTH", reftype.Copy, lvMain),
		always("INTERNAL_TYPE", "BOOK", lvMain),
		always("RESOURCE", "text", lvMain),
		always("GENRE", "unpublished", lvMain),
	)

	btElectronic = bibtexVariant("electronic",
		lookup("author", "AUTHOR", reftype.Person, lvMain),
		lookup("title", "TITLE", reftype.Title, lvMain),
		lookup("year", "YEAR", reftype.Copy, lvMain),
		lookup("month", "MONTH", reftype.Copy, lvMain),
		lookup("organization", "", reftype.Organization, lvMain),
		lookup("urldate", "URLDATE", reftype.Copy, lvMain),
		always("INTERNAL_TYPE", "ELECTRONIC", lvMain),
		always("RESOURCE", "software, multimedia", lvMain),
		always("GENRE", "web page", lvMain),
	)
)

func renamed(v reftype.Variant, name string) reftype.Variant {
	v.Name = name
	return v
}

// bibtexTypes maps BibTeX entry types to the common schema.
var bibtexTypes = &reftype.Table{
	Format: "bibtex",
	Variants: []reftype.Variant{
		btArticle,
		btBook,
		btBooklet,
		btInbook,
		btIncollection,
		btInproceedings,
		renamed(btInproceedings, "conference"),
		btManual,
		btMastersthesis,
		btPhdthesis,
		btMisc,
		btProceedings,
		btTechreport,
		renamed(btTechreport, "report"),
		btUnpublished,
		btElectronic,
		renamed(btElectronic, "online"),
		renamed(btElectronic, "www"),
	},
	Default: 10,
}
