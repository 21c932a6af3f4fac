// Package bank holds the static question catalog the exam draws from.
// The catalog is read-only; it reaches the store only through a reseed
// (the init_db operation), after which all runtime reads go to the store.
package bank

import "github.com/examhall/examhall/internal/exam"

type Entry struct {
	Prompt     string
	Options    []string
	Answer     int // index into Options
	Difficulty string
}

// ForCategory returns the catalog entries for a category, empty for an
// unknown one.
func ForCategory(category string) []Entry {
	return catalog[category]
}

// Questions flattens the catalog into store records for the given
// categories, in catalog order.
func Questions(categories []string) []exam.Question {
	var out []exam.Question
	for _, cat := range categories {
		for _, e := range catalog[cat] {
			out = append(out, exam.Question{
				Category:   cat,
				Prompt:     e.Prompt,
				Options:    e.Options,
				Answer:     e.Answer,
				Difficulty: e.Difficulty,
			})
		}
	}
	return out
}

var catalog = map[string][]Entry{
	"python": {
		{"What is Python?", []string{"A programming language", "A snake", "A software", "A framework"}, 0, "basic"},
		{"Which keyword is used to define a function in Python?", []string{"function", "def", "func", "define"}, 1, "basic"},
		{"What is the output of print(2 ** 3)?", []string{"5", "6", "8", "9"}, 2, "basic"},
		{"Which data type is mutable in Python?", []string{"tuple", "string", "list", "int"}, 2, "basic"},
		{"Which method is used to add an element at the end of a list?", []string{"add()", "append()", "insert()", "extend()"}, 1, "basic"},
		{"Which operator is used for floor division in Python?", []string{"/", "//", "%", "**"}, 1, "basic"},
		{"Which function is used to get the length of a list?", []string{"length()", "size()", "len()", "count()"}, 2, "basic"},
		{"What is used to handle exceptions in Python?", []string{"try-catch", "try-except", "try-error", "catch-error"}, 1, "intermediate"},
		{"What is a lambda function?", []string{"Named function", "Anonymous function", "Recursive function", "Built-in function"}, 1, "intermediate"},
		{"What is the purpose of __init__ method?", []string{"Destructor", "Constructor", "Iterator", "Generator"}, 1, "intermediate"},
		{"What is a generator in Python?", []string{"Function that returns iterator", "Data type", "Loop structure", "Module"}, 0, "advanced"},
		{"What is the GIL in Python?", []string{"Global Interpreter Lock", "General Integer Limit", "Graphical Interface Library", "Global Import Lock"}, 0, "advanced"},
	},
	"web_design": {
		{"What does HTML stand for?", []string{"Hyper Text Markup Language", "High Tech Modern Language", "Home Tool Markup Language", "Hyperlinks and Text Markup Language"}, 0, "basic"},
		{"Which tag is used to create a hyperlink?", []string{"<link>", "<a>", "<href>", "<url>"}, 1, "basic"},
		{"What does CSS stand for?", []string{"Creative Style Sheets", "Cascading Style Sheets", "Computer Style Sheets", "Colorful Style Sheets"}, 1, "basic"},
		{"Which property is used to change text color in CSS?", []string{"text-color", "font-color", "color", "text-style"}, 2, "basic"},
		{"What is the correct HTML tag for the largest heading?", []string{"<h6>", "<heading>", "<h1>", "<head>"}, 2, "basic"},
		{"What is Bootstrap?", []string{"JavaScript library", "CSS framework", "Database", "Programming language"}, 1, "basic"},
		{"What does DOM stand for?", []string{"Document Object Model", "Data Object Model", "Display Object Management", "Digital Optimization Method"}, 0, "basic"},
		{"What is JavaScript?", []string{"Styling language", "Markup language", "Programming language", "Database language"}, 2, "intermediate"},
		{"Which property adds space inside an element's border?", []string{"margin", "padding", "spacing", "border-spacing"}, 1, "intermediate"},
		{"What is responsive web design?", []string{"Fast loading", "Adaptive to screen sizes", "Interactive design", "Animated design"}, 1, "intermediate"},
		{"What is Virtual DOM?", []string{"Real DOM copy", "Lightweight DOM copy in memory", "Database", "Server"}, 1, "advanced"},
		{"What is webpack used for?", []string{"Bundling modules", "Database", "Testing", "Hosting"}, 0, "advanced"},
	},
	"iot": {
		{"What does IoT stand for?", []string{"Internet of Things", "Integration of Technology", "Internet of Tools", "Internal Operating Technology"}, 0, "basic"},
		{"Which protocol is commonly used in IoT?", []string{"FTP", "MQTT", "SMTP", "POP3"}, 1, "basic"},
		{"What is a sensor in IoT?", []string{"Output device", "Input device", "Storage device", "Network device"}, 1, "basic"},
		{"Which Arduino board is most popular?", []string{"Arduino Mega", "Arduino Uno", "Arduino Nano", "Arduino Pro"}, 1, "basic"},
		{"What is Raspberry Pi?", []string{"Sensor", "Microcontroller", "Single-board computer", "Programming language"}, 2, "basic"},
		{"Which language is commonly used for Arduino?", []string{"Python", "Java", "C/C++", "JavaScript"}, 2, "basic"},
		{"What is the purpose of actuators in IoT?", []string{"Sense data", "Process data", "Perform actions", "Store data"}, 2, "basic"},
		{"Which wireless technology has the longest range?", []string{"Bluetooth", "WiFi", "LoRa", "NFC"}, 2, "intermediate"},
		{"Which component converts analog to digital?", []string{"DAC", "ADC", "ALU", "CPU"}, 1, "intermediate"},
		{"What is MQTT?", []string{"Messaging protocol", "Programming language", "Hardware", "Database"}, 0, "intermediate"},
		{"What does GPIO stand for?", []string{"General Purpose Input Output", "Global Processing Input Output", "General Program Interface Output", "Graphical Pin Input Output"}, 0, "advanced"},
		{"What is a DHT11 sensor used for?", []string{"Motion", "Temperature and humidity", "Light", "Pressure"}, 1, "advanced"},
	},
	"fundamentals": {
		{"What is a computer?", []string{"Electronic device", "Mechanical device", "Chemical device", "Biological device"}, 0, "basic"},
		{"Which is an input device?", []string{"Monitor", "Printer", "Keyboard", "Speaker"}, 2, "basic"},
		{"What does CPU stand for?", []string{"Central Processing Unit", "Computer Personal Unit", "Central Program Utility", "Computer Processing Utility"}, 0, "basic"},
		{"Which is a primary memory?", []string{"Hard Disk", "RAM", "CD-ROM", "USB Drive"}, 1, "basic"},
		{"What does ROM stand for?", []string{"Read Only Memory", "Random Operating Memory", "Read Operating Memory", "Random Only Memory"}, 0, "basic"},
		{"Which is an output device?", []string{"Mouse", "Scanner", "Monitor", "Microphone"}, 2, "basic"},
		{"Which memory is volatile?", []string{"ROM", "Hard Disk", "RAM", "Flash Drive"}, 2, "basic"},
		{"What does ALU stand for?", []string{"Arithmetic Logic Unit", "Advanced Logic Unit", "Automated Logic Unit", "Analog Logic Unit"}, 0, "intermediate"},
		{"Which is secondary storage?", []string{"RAM", "Cache", "Hard Disk", "Registers"}, 2, "intermediate"},
		{"What is the smallest unit of data?", []string{"Byte", "Bit", "Nibble", "Word"}, 1, "intermediate"},
		{"Which converts source code to machine code?", []string{"Interpreter", "Compiler", "Assembler", "All of these"}, 3, "advanced"},
		{"What is an operating system?", []string{"Hardware", "System software", "Application software", "Utility software"}, 1, "advanced"},
	},
}
