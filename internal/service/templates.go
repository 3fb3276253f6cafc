package service

import "fmt"

// Chart type tags recognized by the templater. Anything else, including an
// empty tag, falls back to ChartDefault.
const (
	ChartBar     = "bar"
	ChartGantt   = "gantt"
	ChartPie     = "pie"
	ChartLine    = "line"
	ChartFlow    = "flow"
	ChartDefault = "default"
)

const barTemplate = `Parse the following bar chart request into a structured JSON format:
%s

Return a JSON object with the following structure:
{
    "title": "Chart title",
    "xAxisLabel": "X-Axis Label",
    "yAxisLabel": "Y-Axis Label",
    "data": [
        { "label": "Category A", "value": 25, "category": "Group 1" },
        { "label": "Category B", "value": 50, "category": "Group 2" }
    ]
}

Only respond with valid JSON, no additional text.`

const ganttTemplate = `Parse the following Gantt chart request into a structured JSON format:
%s

Return a JSON object with the following structure:
{
    "title": "Chart title",
    "tasks": [
        {
            "id": 1,
            "name": "Task name",
            "start": "2023-03-01",
            "end": "2023-03-15",
            "dependencies": [2, 3],
            "category": "Planning"
        }
    ]
}

Only respond with valid JSON, no additional text.`

const pieTemplate = `Parse the following pie chart request into a structured JSON format:
%s

Return a JSON object with the following structure:
{
    "title": "Chart title",
    "data": [
        { "label": "Category A", "value": 25, "color": "#4338CA" },
        { "label": "Category B", "value": 75, "color": "#3B82F6" }
    ]
}

Only respond with valid JSON, no additional text. Ensure values sum to 100.`

const lineTemplate = `Parse the following line chart request into a structured JSON format:
%s

Return a JSON object with the following structure:
{
    "title": "Chart title",
    "xAxisLabel": "X-Axis Label",
    "yAxisLabel": "Y-Axis Label",
    "data": [
        { "label": "Jan", "value": "25", "category": "Temperature" },
        { "label": "Feb", "value": "30", "category": "Temperature" }
    ]
}

Only respond with valid JSON, no additional text.`

const flowTemplate = `Parse the following flow chart request into a structured JSON format:
%s

Return a JSON object with the following structure:
{
    "title": "Chart title",
    "nodes": [
        { "id": "1", "label": "Start", "type": "start" },
        { "id": "2", "label": "Process", "type": "process" },
        { "id": "3", "label": "End", "type": "end" }
    ],
    "links": [
        { "source": "1", "target": "2", "label": "Next" },
        { "source": "2", "target": "3", "label": "Complete" }
    ]
}

Only respond with valid JSON, no additional text.`

const defaultTemplate = `Parse the following chart request into a structured JSON format:
%s

Return a structured JSON response based on the provided request.`

// Render interpolates the user prompt into the template for the given chart
// type. The prompt is embedded verbatim; there is no escaping. Unknown chart
// types select the default template.
func Render(chartType, userPrompt string) string {
	var tmpl string
	switch chartType {
	case ChartBar:
		tmpl = barTemplate
	case ChartGantt:
		tmpl = ganttTemplate
	case ChartPie:
		tmpl = pieTemplate
	case ChartLine:
		tmpl = lineTemplate
	case ChartFlow:
		tmpl = flowTemplate
	default:
		tmpl = defaultTemplate
	}
	return fmt.Sprintf(tmpl, userPrompt)
}
