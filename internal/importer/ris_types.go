package importer

import (
	"slices"

	"github.com/matsen/bibconv/internal/reftype"
)

// risCommon lists the tags every RIS reference type accepts.
var risCommon = []reftype.Lookup{
	lookup("TY", "", reftype.Skip, lvMain),
	lookup("ID", "REFNUM", reftype.Copy, lvMain),
	lookup("AU", "AUTHOR", reftype.Person, lvMain),
	lookup("A1", "AUTHOR", reftype.Person, lvMain),
	lookup("TI", "TITLE", reftype.Title, lvMain),
	lookup("T1", "TITLE", reftype.Title, lvMain),
	lookup("ST", "SHORTTITLE", reftype.Copy, lvMain),
	lookup("KW", "KEYWORD", reftype.Copy, lvMain),
	lookup("AB", "ABSTRACT", reftype.Copy, lvMain),
	lookup("N2", "ABSTRACT", reftype.Copy, lvMain),
	lookup("N1", "NOTES", reftype.Note, lvMain),
	lookup("U1", "NOTES", reftype.Note, lvMain),
	lookup("U2", "NOTES", reftype.Note, lvMain),
	lookup("UR", "URL", reftype.URL, lvMain),
	lookup("L1", "FILEATTACH", reftype.LinkedFile, lvMain),
	lookup("L2", "FILEATTACH", reftype.LinkedFile, lvMain),
	lookup("L4", "FIGATTACH", reftype.LinkedFile, lvMain),
	lookup("DO", "DOI", reftype.URL, lvMain),
	lookup("DI", "DOI", reftype.URL, lvMain),
	lookup("LA", "LANGUAGE", reftype.Copy, lvMain),
	lookup("AN", "ACCESSNUM", reftype.Copy, lvMain),
	lookup("CN", "CALLNUMBER", reftype.Copy, lvMain),
	lookup("AD", "ADDRESS:AUTHOR", reftype.Copy, lvMain),
	lookup("M3", "GENRE", reftype.Genre, lvMain),
	lookup("DB", "DATABASE", reftype.Copy, lvMain),
	lookup("Y2", "DATEACCESSED", reftype.Copy, lvMain),
}

func risVariant(name string, lookups ...reftype.Lookup) reftype.Variant {
	return reftype.Variant{Name: name, Lookups: slices.Concat(lookups, risCommon)}
}

// risPeriodical describes a part of a continuing resource: journal articles,
// magazine and newspaper pieces.
func risPeriodical(name, genre string) reftype.Variant {
	return risVariant(name,
		lookup("A2", "EDITOR", reftype.Person, lvHost),
		lookup("T2", "TITLE", reftype.Title, lvHost),
		lookup("JO", "TITLE", reftype.Title, lvHost),
		lookup("JF", "TITLE", reftype.Title, lvHost),
		lookup("JA", "SHORTTITLE", reftype.Title, lvHost),
		lookup("J2", "SHORTTITLE", reftype.Title, lvHost),
		lookup("PY", "PARTYEAR", reftype.Date, lvMain),
		lookup("Y1", "PARTYEAR", reftype.Date, lvMain),
		lookup("DA", "PARTYEAR", reftype.Date, lvMain),
		lookup("VL", "VOLUME", reftype.Copy, lvMain),
		lookup("IS", "ISSUE", reftype.Copy, lvMain),
		lookup("SP", "PAGESTART", reftype.Copy, lvMain),
		lookup("EP", "PAGEEND", reftype.Copy, lvMain),
		lookup("PB", "PUBLISHER", reftype.Copy, lvHost),
		lookup("CY", "ADDRESS", reftype.Copy, lvHost),
		lookup("SN", "SERIALNUMBER", reftype.SerialNo, lvHost),
		always("RESOURCE", "text", lvMain),
		always("ISSUANCE", "continuing", lvHost),
		always("GENRE", genre, lvMain),
		always("GENRE", "periodical", lvHost),
	)
}

// risMonograph describes a whole book-like work. Extra lookups follow the
// shared ones, so they cannot override them.
func risMonograph(name string, extra ...reftype.Lookup) reftype.Variant {
	lookups := []reftype.Lookup{
		lookup("A2", "EDITOR", reftype.Person, lvMain),
		lookup("ED", "EDITOR", reftype.Person, lvMain),
		lookup("A3", "EDITOR", reftype.Person, lvHost),
		lookup("T2", "TITLE", reftype.Title, lvHost),
		lookup("T3", "TITLE", reftype.Title, lvHost),
		lookup("PY", "YEAR", reftype.Date, lvMain),
		lookup("Y1", "YEAR", reftype.Date, lvMain),
		lookup("DA", "YEAR", reftype.Date, lvMain),
		lookup("VL", "VOLUME", reftype.Copy, lvMain),
		lookup("IS", "NUMBER", reftype.Copy, lvMain),
		lookup("SP", "TOTALPAGES", reftype.Copy, lvMain),
		lookup("ET", "EDITION", reftype.Copy, lvMain),
		lookup("PB", "PUBLISHER", reftype.Copy, lvMain),
		lookup("CY", "ADDRESS", reftype.Copy, lvMain),
		lookup("SN", "SERIALNUMBER", reftype.SerialNo, lvMain),
		always("RESOURCE", "text", lvMain),
		always("ISSUANCE", "monographic", lvMain),
	}
	return risVariant(name, append(lookups, extra...)...)
}

// risPart describes a piece of a book-like work: chapters and conference
// papers.
func risPart(name, genre, hostGenre string) reftype.Variant {
	return risVariant(name,
		lookup("A2", "EDITOR", reftype.Person, lvHost),
		lookup("ED", "EDITOR", reftype.Person, lvHost),
		lookup("A3", "EDITOR", reftype.Person, lvSeries),
		lookup("T2", "TITLE", reftype.Title, lvHost),
		lookup("BT", "TITLE", reftype.Title, lvHost),
		lookup("T3", "TITLE", reftype.Title, lvSeries),
		lookup("PY", "PARTYEAR", reftype.Date, lvMain),
		lookup("Y1", "PARTYEAR", reftype.Date, lvMain),
		lookup("DA", "PARTYEAR", reftype.Date, lvMain),
		lookup("VL", "VOLUME", reftype.Copy, lvHost),
		lookup("SP", "PAGESTART", reftype.Copy, lvMain),
		lookup("EP", "PAGEEND", reftype.Copy, lvMain),
		lookup("ET", "EDITION", reftype.Copy, lvHost),
		lookup("PB", "PUBLISHER", reftype.Copy, lvHost),
		lookup("CY", "ADDRESS", reftype.Copy, lvHost),
		lookup("SN", "SERIALNUMBER", reftype.SerialNo, lvHost),
		always("RESOURCE", "text", lvMain),
		always("ISSUANCE", "monographic", lvHost),
		always("GENRE", genre, lvMain),
		always("GENRE", hostGenre, lvHost),
	)
}

var (
	risGeneric = risMonograph("GEN")

	risThesis = risMonograph("THES",
		always("GENRE", "thesis", lvMain),
	)

	risReport = risMonograph("RPRT",
		lookup("M1", "REPORTNUMBER", reftype.Copy, lvMain),
		always("GENRE", "report", lvMain),
	)

	risPatent = risVariant("PAT",
		lookup("A2", "ASSIGNEE", reftype.Person, lvMain),
		lookup("PY", "YEAR", reftype.Date, lvMain),
		lookup("Y1", "YEAR", reftype.Date, lvMain),
		lookup("DA", "YEAR", reftype.Date, lvMain),
		lookup("IS", "NUMBER", reftype.Copy, lvMain),
		lookup("M1", "NUMBER", reftype.Copy, lvMain),
		lookup("CY", "ADDRESS", reftype.Copy, lvMain),
		always("RESOURCE", "text", lvMain),
		always("GENRE", "patent", lvMain),
	)

	risElectronic = risVariant("ELEC",
		lookup("PY", "YEAR", reftype.Date, lvMain),
		lookup("Y1", "YEAR", reftype.Date, lvMain),
		lookup("DA", "YEAR", reftype.Date, lvMain),
		lookup("PB", "PUBLISHER", reftype.Copy, lvMain),
		always("RESOURCE", "software, multimedia", lvMain),
		always("GENRE", "electronic", lvMain),
	)

	risUnpublished = risVariant("UNPB",
		lookup("PY", "YEAR", reftype.Date, lvMain),
		lookup("Y1", "YEAR", reftype.Date, lvMain),
		lookup("DA", "YEAR", reftype.Date, lvMain),
		always("RESOURCE", "text", lvMain),
		always("GENRE", "unpublished", lvMain),
	)
)

// risTypes are the RIS reference types. GEN is the default.
var risTypes = &reftype.Table{
	Format: "ris",
	Variants: []reftype.Variant{
		risPeriodical("JOUR", "journal article"),
		risPeriodical("JFULL", "journal article"),
		risPeriodical("ABST", "abstract or summary"),
		risPeriodical("MGZN", "magazine article"),
		risPeriodical("NEWS", "newspaper article"),
		risMonograph("BOOK", always("GENRE", "book", lvMain)),
		risMonograph("EDBOOK", always("GENRE", "book", lvMain)),
		risPart("CHAP", "book chapter", "book"),
		risPart("CONF", "conference publication", "conference publication"),
		risPart("CPAPER", "conference publication", "conference publication"),
		risThesis,
		risReport,
		risPatent,
		risElectronic,
		risUnpublished,
		risGeneric,
	},
	Default: 15,
}
