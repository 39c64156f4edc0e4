package snippets

// builtin is the stock Ruby snippet set. Bodies use the %N(default) /
// %0 placeholder syntax; \t marks one indentation level for the expander.
var builtin = map[string]string{
	"rb":     "#!/usr/bin/env ruby",
	"forin":  "for %1(element) in %2(collection)\n\t%1.%0\nend",
	"if":     "if %1(condition)\n\t%0\nend",
	"ife":    "if %1(condition)\n\t%2\nelse\n\t%3\nend",
	"unless": "unless %1(condition)\n\t%0\nend",
	"case":   "case %1(object)\nwhen %2(condition)\n\t%0\nend",
	"when":   "when %1(condition)\n\t%0",
	"begin":  "begin\n\t%0\nrescue %1(StandardError) => %2(e)\nend",
	"def":    "def %1(method_name)\n\t%0\nend",
	"defs":   "def self.%1(method_name)\n\t%0\nend",
	"class":  "class %1(ClassName)\n\t%0\nend",
	"mod":    "module %1(ModuleName)\n\t%0\nend",
	"init":   "def initialize(%1(args))\n\t%0\nend",
	"while":  "while %1(condition)\n\t%0\nend",
	"until":  "until %1(condition)\n\t%0\nend",
	"do":     "do\n\t%0\nend",
	"dov":    "do |%1(variable)|\n\t%0\nend",

	"am":  "alias_method :%1(new_name), :%2(old_name)",
	"app": "if __FILE__ == $PROGRAM_NAME\n\t%0\nend",
	"ar":  "attr_reader :%0(attr_names)",
	"aw":  "attr_writer :%0(attr_names)",
	"aa":  "attr_accessor :%0(attr_names)",
	"rq":  "require '%0'",
	"rqr": "require_relative '%0'",

	"all":  "all? { |%1(e)| %0 }",
	"any":  "any? { |%1(e)| %0 }",
	"col":  "collect { |%1(e)| %0 }",
	"det":  "detect { |%1(e)| %0 }",
	"ea":   "each { |%1(e)| %0 }",
	"eai":  "each_index { |%1(i)| %0 }",
	"eak":  "each_key { |%1(key)| %0 }",
	"eap":  "each_pair { |%1(name), %2(value)| %0 }",
	"eav":  "each_value { |%1(value)| %0 }",
	"eawi": "each_with_index { |%1(e), %2(i)| %0 }",
	"inj":  "inject(%1(init)) { |%2(mem), %3(var)| %0 }",
	"map":  "map { |%1(e)| %0 }",
	"rej":  "reject { |%1(e)| %0 }",
	"sel":  "select { |%1(e)| %0 }",
	"sor":  "sort { |a, b| %0 }",
	"sum":  "inject { |sum, e| sum + e }",
	"tim":  "times { |%1(n)| %0 }",
	"upt":  "upto(%1(2)) { |%2(n)| %0 }",
	"zip":  "zip(%1(enums)) { |row| %0 }",

	"Dir":  "Dir.glob(%1(pattern)) { |%2(file)| %0 }",
	"File": "File.foreach(%1('path/to/file')) { |%2(line)| %0 }",
	"r":    "File.read(%1(filename))",
	"w":    "File.open(%1(filename), 'w') { |%2(file)| %0 }",

	"gsub": "gsub(/%1(pattern)/) { |%2(match)| %0 }",
	"sub":  "sub(/%1(pattern)/) { |%2(match)| %0 }",
	"scan": "scan(/%1(pattern)/) { |%2(match)| %0 }",
	"y":    ":yields: %0(arguments)",
}
