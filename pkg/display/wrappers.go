package display

import "github.com/sdiehl/ipython/pkg/mime"

// Each Display<Format> function takes raw=false to format the objects and
// publish only text/plain plus that format, or raw=true when the objects
// already hold rendered content of that format. Raw objects are published
// as-is without going through the Formatter.

// DisplayPretty displays the plain text representation of objs
func (d *Displayer) DisplayPretty(raw bool, objs ...interface{}) error {
	return d.displayAs(mime.TextPlain, raw, objs, func(obj interface{}) error {
		s, err := rawText(mime.TextPlain, obj)
		if err != nil {
			return err
		}
		return d.publisher.PublishPretty(s)
	})
}

// DisplayHTML displays the HTML representation of objs
func (d *Displayer) DisplayHTML(raw bool, objs ...interface{}) error {
	return d.displayAs(mime.TextHTML, raw, objs, func(obj interface{}) error {
		s, err := rawText(mime.TextHTML, obj)
		if err != nil {
			return err
		}
		return d.publisher.PublishHTML(s)
	})
}

// DisplayMarkdown displays the Markdown representation of objs
func (d *Displayer) DisplayMarkdown(raw bool, objs ...interface{}) error {
	return d.displayAs(mime.TextMarkdown, raw, objs, func(obj interface{}) error {
		s, err := rawText(mime.TextMarkdown, obj)
		if err != nil {
			return err
		}
		return d.publisher.PublishMarkdown(s)
	})
}

// DisplaySVG displays the SVG representation of objs
func (d *Displayer) DisplaySVG(raw bool, objs ...interface{}) error {
	return d.displayAs(mime.ImageSVG, raw, objs, func(obj interface{}) error {
		s, err := rawText(mime.ImageSVG, obj)
		if err != nil {
			return err
		}
		return d.publisher.PublishSVG(s)
	})
}

// DisplayPNG displays the PNG representation of objs
func (d *Displayer) DisplayPNG(raw bool, objs ...interface{}) error {
	return d.displayAs(mime.ImagePNG, raw, objs, func(obj interface{}) error {
		b, err := rawBytes(mime.ImagePNG, obj)
		if err != nil {
			return err
		}
		return d.publisher.PublishPNG(b)
	})
}

// DisplayJPEG displays the JPEG representation of objs
func (d *Displayer) DisplayJPEG(raw bool, objs ...interface{}) error {
	return d.displayAs(mime.ImageJPEG, raw, objs, func(obj interface{}) error {
		b, err := rawBytes(mime.ImageJPEG, obj)
		if err != nil {
			return err
		}
		return d.publisher.PublishJPEG(b)
	})
}

// DisplayLatex displays the LaTeX representation of objs
func (d *Displayer) DisplayLatex(raw bool, objs ...interface{}) error {
	return d.displayAs(mime.TextLatex, raw, objs, func(obj interface{}) error {
		s, err := rawText(mime.TextLatex, obj)
		if err != nil {
			return err
		}
		return d.publisher.PublishLatex(s)
	})
}

// DisplayJSON displays the JSON representation of objs
func (d *Displayer) DisplayJSON(raw bool, objs ...interface{}) error {
	return d.displayAs(mime.ApplicationJSON, raw, objs, func(obj interface{}) error {
		s, err := rawText(mime.ApplicationJSON, obj)
		if err != nil {
			return err
		}
		return d.publisher.PublishJSON(s)
	})
}

// DisplayJavascript displays the Javascript representation of objs
func (d *Displayer) DisplayJavascript(raw bool, objs ...interface{}) error {
	return d.displayAs(mime.ApplicationJS, raw, objs, func(obj interface{}) error {
		s, err := rawText(mime.ApplicationJS, obj)
		if err != nil {
			return err
		}
		return d.publisher.PublishJavascript(s)
	})
}
