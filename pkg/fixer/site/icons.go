package site

import "github.com/PuerkitoBio/goquery"

// iconMarkup maps legacy icon image selectors to the markup replacing
// them: a decorative icon span plus screen-reader text.
var iconMarkup = map[string]string{
	`img[src$="images/add.gif"]`:              iconSpan("fa-plus", "Addition"),
	`img[src$="images/remove.gif"]`:           iconSpan("fa-minus", "Removal"),
	`img[src$="images/update.gif"]`:           iconSpan("fa-refresh", "Update"),
	`img[src$="images/fix.gif"]`:              iconSpan("fa-wrench", "Fix"),
	`img[src$="images/icon_help_sml.gif"]`:    iconSpan("fa-question", "Question"),
	`img[src$="images/icon_success_sml.gif"]`: iconSpan("fa-check", "Passed"),
	`img[src$="images/icon_warning_sml.gif"]`: iconSpan("fa-exclamation", "Warning"),
	`img[src$="images/icon_error_sml.gif"]`:   iconSpan("fa-close", "Failed"),
	`img[src$="images/icon_info_sml.gif"]`:    iconSpan("fa-info", "Info"),
}

func iconSpan(icon, label string) string {
	return `<span><span class="fa ` + icon + `" aria-hidden="true"></span><span class="sr-only">` + label + `</span></span>`
}

func (t *Transformer) transformIcons(doc *goquery.Document) {
	for selector, markup := range iconMarkup {
		doc.Find(selector).Each(func(_ int, img *goquery.Selection) {
			img.ReplaceWithHtml(markup)
		})
	}
}
