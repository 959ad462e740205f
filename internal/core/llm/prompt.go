package llm

import (
	"github.com/anny12sstr/converter-analyses/internal/config"
	"github.com/anny12sstr/converter-analyses/internal/core"
)

// The prompt set is fixed per media-type category and table mode. No
// user-controlled content is interpolated; the extracted content travels as a
// separate part of the completion request.

const htmlWordPrompt = "Convert ONLY the medical analysis results section from the following Word document " +
	"into a single, long, scrollable HTML table. Ensure flawless accuracy in medical analysis data representation. " +
	"The table must be one continuous HTML table encompassing all data rows and columns that are part of the " +
	"medical analysis results themselves. Focus EXCLUSIVELY on the tabular data presenting the medical analysis " +
	"results. Under no circumstances should you include any text or information that is NOT directly part of the " +
	"medical analysis results table. Importantly: Do not include any checkboxes or interactive form elements in " +
	"the generated table. Ensure that the HTML table includes borders to clearly delineate rows and columns."

const htmlPDFPrompt = "Extract the tabular data from the following PDF document and convert it into a single, " +
	"long, scrollable HTML table. Ensure that all rows and columns are accurately represented. Focus solely on " +
	"the tabular data. Do not add extra text, headers, or footers. Ensure the generated table has visible borders " +
	"for all cells. Do not include any checkboxes or interactive elements."

const htmlImagePrompt = "Analyze the table in this image and convert it into a single, long, scrollable HTML " +
	"table. Ensure flawless accuracy in data representation. The table must be one continuous HTML table " +
	"encompassing all data rows and columns from the image. Under no circumstances should you split the " +
	"information into multiple tables. Importantly: Do not include any checkboxes or interactive form elements " +
	"in the generated table. Ensure that the HTML table includes borders to clearly delineate rows and columns."

const jsonContract = " Respond with ONLY a JSON object of the shape " +
	`{"headers": ["..."], "rows": [["..."]]}` +
	" where headers is the ordered list of column names and rows is the ordered list of data rows, every cell a " +
	"string. If the input contains no medical analysis results, respond with exactly []. Do not add any prose " +
	"before or after the JSON."

const jsonWordPrompt = "Locate the medical analysis results section in the following Word document. Focus " +
	"EXCLUSIVELY on the tabular data presenting the medical analysis results; ignore everything else." + jsonContract

const jsonPDFPrompt = "Locate the medical analysis results table in the following PDF document text. Represent " +
	"every row and column accurately." + jsonContract

const jsonImagePrompt = "Analyze the table in this image. Represent every row and column accurately." + jsonContract

// PromptFor selects the instruction deterministically from the media-type
// category and the configured table mode.
func PromptFor(category core.MediaCategory, tableMode string) string {
	if tableMode == config.TableModeJSON {
		switch category {
		case core.CategoryWord:
			return jsonWordPrompt
		case core.CategoryPDF:
			return jsonPDFPrompt
		default:
			return jsonImagePrompt
		}
	}
	switch category {
	case core.CategoryWord:
		return htmlWordPrompt
	case core.CategoryPDF:
		return htmlPDFPrompt
	default:
		return htmlImagePrompt
	}
}
