package html

// CSRFFormScript returns the inline script appended to every desk screen.
// It copies the CSRF cookie into a hidden _csrf field on each POST form so
// plain form submissions pass the double-submit check without any per-view
// wiring.
func CSRFFormScript() string {
	return `<script>
(function () {
  function readCookie(name) {
    var prefix = name + "=";
    var parts = document.cookie ? document.cookie.split(";") : [];
    for (var i = 0; i < parts.length; i++) {
      var c = parts[i].trim();
      if (c.indexOf(prefix) === 0) return decodeURIComponent(c.substring(prefix.length));
    }
    return "";
  }

  function injectTokens() {
    var token = readCookie("X-CSRF-Token");
    if (!token) return;

    var forms = document.querySelectorAll("form");
    for (var i = 0; i < forms.length; i++) {
      var form = forms[i];
      var method = (form.getAttribute("method") || "GET").toUpperCase();
      if (method !== "POST") continue;
      if (form.querySelector("input[name='_csrf']")) continue;

      var input = document.createElement("input");
      input.type = "hidden";
      input.name = "_csrf";
      input.value = token;
      form.appendChild(input);
    }
  }

  if (document.readyState === "loading") {
    document.addEventListener("DOMContentLoaded", injectTokens);
  } else {
    injectTokens();
  }
})();
</script>`
}
